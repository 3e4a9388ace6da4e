package model

// PropertyKind tags the payload carried by a Property.
type PropertyKind int

const (
	KindAttribute PropertyKind = iota
	KindRelationship
)

func (k PropertyKind) String() string {
	if k == KindRelationship {
		return "relationship"
	}
	return "attribute"
}

// Property is the tagged variant over Attribute and Relationship. The shared
// fields are copied from the payload when the variant is built; exactly one
// of Attribute and Relationship is set, matching Kind.
type Property struct {
	Kind                   PropertyKind
	EntityName             string
	Name                   string
	Indexed                bool
	Optional               bool
	RenamingIdentifier     string
	StoredInExternalRecord bool
	Transient              bool
	UserInfo               map[string]string

	Attribute    *Attribute
	Relationship *Relationship
}

// AttributeProperty wraps an attribute.
func AttributeProperty(a *Attribute) Property {
	return Property{
		Kind:                   KindAttribute,
		EntityName:             a.EntityName,
		Name:                   a.Name,
		Indexed:                a.Indexed,
		Optional:               a.Optional,
		RenamingIdentifier:     a.RenamingIdentifier,
		StoredInExternalRecord: a.StoredInExternalRecord,
		Transient:              a.Transient,
		UserInfo:               a.UserInfo,
		Attribute:              a,
	}
}

// RelationshipProperty wraps a relationship.
func RelationshipProperty(r *Relationship) Property {
	return Property{
		Kind:                   KindRelationship,
		EntityName:             r.EntityName,
		Name:                   r.Name,
		Indexed:                r.Indexed,
		Optional:               r.Optional,
		RenamingIdentifier:     r.RenamingIdentifier,
		StoredInExternalRecord: r.StoredInExternalRecord,
		Transient:              r.Transient,
		UserInfo:               r.UserInfo,
		Relationship:           r,
	}
}

// IsRelationship reports whether the variant carries a Relationship.
func (p Property) IsRelationship() bool { return p.Kind == KindRelationship }
