// Package scanner reads Core Data model documents into a model.Model.
//
// The scanner fails fast: any required markup attribute that is missing or
// malformed produces a *model.SchemaError and no partial Model is returned.
// Optional attributes fall back to documented defaults (flags are false
// unless exactly "YES", counts are 0, parentEntity is empty).
package scanner

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/Alia5/modelgen/internal/codegen/model"
)

const (
	entityTag       = "entity"
	attributeTag    = "attribute"
	relationshipTag = "relationship"

	yes = "YES"
)

// ParseDocument parses raw schema markup and builds the Model from its root element.
func ParseDocument(data []byte) (*model.Model, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, &model.SchemaError{Message: "schema document is not well-formed XML", Cause: err}
	}
	root := doc.Root()
	if root == nil {
		return nil, &model.SchemaError{Message: "schema document has no root element"}
	}
	return Parse(root)
}

// Parse walks the direct entity children of root in document order.
func Parse(root *etree.Element) (*model.Model, error) {
	m := &model.Model{}
	seen := make(map[string]bool)
	for _, node := range root.SelectElements(entityTag) {
		entity, err := parseEntity(node)
		if err != nil {
			return nil, err
		}
		if seen[entity.Name] {
			return nil, &model.SchemaError{Entity: entity.Name, Attribute: "name", Message: "duplicate entity name"}
		}
		seen[entity.Name] = true
		m.Entities = append(m.Entities, entity)
	}
	return m, nil
}

func parseEntity(node *etree.Element) (model.Entity, error) {
	name, err := required(node, "name", "", "")
	if err != nil {
		return model.Entity{}, err
	}
	className, err := required(node, "representedClassName", name, "")
	if err != nil {
		return model.Entity{}, err
	}

	entity := model.Entity{
		Name:               name,
		ClassName:          className,
		ParentEntityName:   node.SelectAttrValue("parentEntity", ""),
		RenamingIdentifier: node.SelectAttrValue("renamingIdentifier", ""),
		Syncable:           flag(node, "syncable"),
		UserInfo:           UserInfo(node),
	}

	for _, an := range node.SelectElements(attributeTag) {
		attr, err := parseAttribute(an, name)
		if err != nil {
			return model.Entity{}, err
		}
		entity.Attributes = append(entity.Attributes, attr)
	}
	for _, rn := range node.SelectElements(relationshipTag) {
		rel, err := parseRelationship(rn, name)
		if err != nil {
			return model.Entity{}, err
		}
		entity.Relationships = append(entity.Relationships, rel)
	}
	return entity, nil
}

func parseAttribute(node *etree.Element, entityName string) (model.Attribute, error) {
	name, err := required(node, "name", entityName, "")
	if err != nil {
		return model.Attribute{}, err
	}
	return model.Attribute{
		EntityName:             entityName,
		Name:                   name,
		Type:                   model.ParseAttributeType(node.SelectAttrValue("attributeType", "")),
		DefaultValue:           node.SelectAttrValue("defaultValueString", ""),
		Indexed:                flag(node, "indexed"),
		Optional:               flag(node, "optional"),
		RenamingIdentifier:     node.SelectAttrValue("renamingIdentifier", ""),
		StoredInExternalRecord: flag(node, "storedInExternalRecord"),
		Syncable:               flag(node, "syncable"),
		Transient:              flag(node, "transient"),
		UserInfo:               UserInfo(node),
	}, nil
}

func parseRelationship(node *etree.Element, entityName string) (model.Relationship, error) {
	name, err := required(node, "name", entityName, "")
	if err != nil {
		return model.Relationship{}, err
	}
	dest, err := required(node, "destinationEntity", entityName, name)
	if err != nil {
		return model.Relationship{}, err
	}
	maxCount, err := count(node, "maxCount", entityName, name)
	if err != nil {
		return model.Relationship{}, err
	}
	minCount, err := count(node, "minCount", entityName, name)
	if err != nil {
		return model.Relationship{}, err
	}
	return model.Relationship{
		EntityName:             entityName,
		Name:                   name,
		DestinationEntityName:  dest,
		DeleteRule:             model.ParseDeleteRule(node.SelectAttrValue("deleteRule", "")),
		Indexed:                flag(node, "indexed"),
		MaxCount:               maxCount,
		MinCount:               minCount,
		Optional:               flag(node, "optional"),
		Ordered:                flag(node, "ordered"),
		RenamingIdentifier:     node.SelectAttrValue("renamingIdentifier", ""),
		StoredInExternalRecord: flag(node, "storedInExternalRecord"),
		Transient:              flag(node, "transient"),
		UserInfo:               UserInfo(node),
	}, nil
}

func required(node *etree.Element, key, entity, property string) (string, error) {
	attr := node.SelectAttr(key)
	if attr == nil || attr.Value == "" {
		return "", &model.SchemaError{
			Entity:    entity,
			Property:  property,
			Attribute: key,
			Message:   fmt.Sprintf("<%s> is missing required attribute %q", node.Tag, key),
		}
	}
	return attr.Value, nil
}

func flag(node *etree.Element, key string) bool {
	return node.SelectAttrValue(key, "") == yes
}

func count(node *etree.Element, key, entity, property string) (int, error) {
	raw := node.SelectAttrValue(key, "")
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &model.SchemaError{
			Entity:    entity,
			Property:  property,
			Attribute: key,
			Message:   "not an integer",
			Cause:     err,
		}
	}
	return n, nil
}
