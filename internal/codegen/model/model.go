// Package model holds the intermediate representation built by the scanner
// and consumed by the language generators. Nothing in this package is mutated
// once the scanner hands a Model over.
package model

import "sort"

// Model is the root of a parsed schema version.
type Model struct {
	Entities []Entity // Document order; drives output file order and import-all listings
}

// Attributes flattens the attributes of every entity, entities in document order.
func (m *Model) Attributes() []Attribute {
	var out []Attribute
	for _, e := range m.Entities {
		out = append(out, e.Attributes...)
	}
	return out
}

// Entity returns the entity with the given schema name.
func (m *Model) Entity(name string) (*Entity, bool) {
	for i := range m.Entities {
		if m.Entities[i].Name == name {
			return &m.Entities[i], true
		}
	}
	return nil, false
}

// ClassName resolves an entity name to its class name. Names that do not
// resolve are returned unchanged so dangling references stay visible in output.
func (m *Model) ClassName(entityName string) string {
	if e, ok := m.Entity(entityName); ok {
		return e.ClassName
	}
	return entityName
}

// Entity is one schema type.
type Entity struct {
	Name               string            // Schema name, unique within the Model
	ClassName          string            // representedClassName, required
	ParentEntityName   string            // Empty for roots of an inheritance chain
	Attributes         []Attribute       // Document order
	Relationships      []Relationship    // Document order
	RenamingIdentifier string            // Schema evolution hint; empty when absent
	Syncable           bool              // syncable="YES"
	UserInfo           map[string]string // Free-form metadata, never nil after scanning
}

// IsRoot reports whether the entity has no parent entity.
func (e *Entity) IsRoot() bool { return e.ParentEntityName == "" }

// Properties merges attributes and relationships sorted by name. This is the
// declaration order every generator uses.
func (e *Entity) Properties() []Property {
	props := make([]Property, 0, len(e.Attributes)+len(e.Relationships))
	for i := range e.Attributes {
		props = append(props, AttributeProperty(&e.Attributes[i]))
	}
	for i := range e.Relationships {
		props = append(props, RelationshipProperty(&e.Relationships[i]))
	}
	sort.SliceStable(props, func(i, j int) bool { return props[i].Name < props[j].Name })
	return props
}

// StoredProperties returns Properties without transient entries.
func (e *Entity) StoredProperties() []Property {
	var out []Property
	for _, p := range e.Properties() {
		if !p.Transient {
			out = append(out, p)
		}
	}
	return out
}

// Attribute is a scalar or blob field.
type Attribute struct {
	EntityName             string // Owning entity
	Name                   string
	Type                   AttributeType
	DefaultValue           string // defaultValueString, verbatim
	Indexed                bool
	Optional               bool
	RenamingIdentifier     string
	StoredInExternalRecord bool
	Syncable               bool
	Transient              bool
	UserInfo               map[string]string
}

// Relationship is a reference or collection field pointing at another entity
// by name. The destination is looked up at generation time.
type Relationship struct {
	EntityName             string // Owning entity
	Name                   string
	DestinationEntityName  string
	DeleteRule             DeleteRule
	Indexed                bool
	MaxCount               int // 0 means unbounded
	MinCount               int
	Optional               bool
	Ordered                bool // Parsed, not reflected in collection types
	RenamingIdentifier     string
	StoredInExternalRecord bool
	Transient              bool
	UserInfo               map[string]string
}

// ToMany reports whether the relationship holds a collection. A max count of
// 0 is unbounded and therefore to-many.
func (r *Relationship) ToMany() bool { return r.MaxCount != 1 }

// File is one generated artifact.
type File struct {
	Name  string   // Path relative to the consumer's output directory
	Lines []string // Joined with "\n" when written
}
