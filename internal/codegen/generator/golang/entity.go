package golang

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/Alia5/modelgen/internal/codegen/common"
	"github.com/Alia5/modelgen/internal/codegen/model"
)

// Generated method names share the namespace of struct fields.
const (
	entityNameMethod = "EntityName"
	userInfoMethod   = "UserInfo"
)

func entityFile(m *model.Model, e *model.Entity, pkg string) (*jen.File, error) {
	f := newFile(pkg)

	names := members{entityNameMethod: "the EntityName method"}
	if len(e.UserInfo) > 0 {
		names[userInfoMethod] = "the UserInfo method"
	}

	var fields []jen.Code
	if !e.IsRoot() {
		if parent, ok := m.Entity(e.ParentEntityName); ok {
			embedded := typeName(parent.ClassName)
			if err := names.claim(e, "", embedded, "the embedded "+parent.Name+" struct"); err != nil {
				return nil, err
			}
			fields = append(fields, jen.Id(embedded))
		} else {
			fields = append(fields, jen.Comment("parent entity "+e.ParentEntityName+" is not in the model"))
		}
	}
	for _, p := range e.StoredProperties() {
		if err := names.claim(e, p.Name, fieldName(p.Name), "property "+p.Name); err != nil {
			return nil, err
		}
		field, err := structField(m, p)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}

	name := typeName(e.ClassName)
	f.Commentf("%s is the %s entity.", name, e.Name)
	f.Type().Id(name).Struct(fields...)
	f.Line()

	f.Comment("EntityName returns the schema name of the entity.")
	f.Func().Params(jen.Id(name)).Id(entityNameMethod).Params().String().Block(
		jen.Return(jen.Lit(e.Name)),
	)

	if len(e.UserInfo) > 0 {
		entries := make([]jen.Code, 0, len(e.UserInfo))
		for _, k := range common.SortedKeys(e.UserInfo) {
			entries = append(entries, jen.Lit(k).Op(":").Lit(e.UserInfo[k]))
		}
		f.Line()
		f.Comment("UserInfo returns the metadata attached to the entity in the model.")
		f.Func().Params(jen.Id(name)).Id(userInfoMethod).Params().Map(jen.String()).String().Block(
			jen.Return(jen.Map(jen.String()).String().Values(entries...)),
		)
	}
	return f, nil
}

func structField(m *model.Model, p model.Property) (jen.Code, error) {
	tag := p.Name
	if p.Optional {
		tag += ",omitempty"
	}
	stmt := jen.Id(fieldName(p.Name))

	if p.IsRelationship() {
		r := p.Relationship
		dest := typeName(m.ClassName(r.DestinationEntityName))
		if r.ToMany() {
			stmt.Index().Op("*").Id(dest)
		} else {
			stmt.Op("*").Id(dest)
		}
		return stmt.Tag(map[string]string{"json": tag}).Comment("delete rule: " + r.DeleteRule.String()), nil
	}

	typ, err := attributeType(p.Attribute)
	if err != nil {
		return nil, err
	}
	if p.Optional && !typ.nilable {
		stmt.Op("*")
	}
	stmt.Add(typ.code)
	stmt.Tag(map[string]string{"json": tag})
	if typ.comment != "" {
		stmt.Comment(typ.comment)
	}
	return stmt, nil
}

// members maps the Go identifiers used by one struct to what claimed them.
type members map[string]string

func (ms members) claim(e *model.Entity, property, ident, owner string) error {
	if prev, ok := ms[ident]; ok {
		return &model.GenerationError{
			Entity:   e.Name,
			Property: property,
			Message:  fmt.Sprintf("Go identifier %s of %s collides with %s", ident, owner, prev),
		}
	}
	ms[ident] = owner
	return nil
}
