package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertiesSortedUnion(t *testing.T) {
	e := Entity{
		Name:      "Person",
		ClassName: "Person",
		Attributes: []Attribute{
			{Name: "name", Type: String},
			{Name: "age", Type: Integer32},
			{Name: "Zed", Type: Boolean},
		},
		Relationships: []Relationship{
			{Name: "pets", DestinationEntityName: "Pet"},
			{Name: "boss", DestinationEntityName: "Person", MaxCount: 1},
		},
	}

	props := e.Properties()
	require.Len(t, props, 5)

	var names []string
	for _, p := range props {
		names = append(names, p.Name)
	}
	// Case-sensitive ordering puts upper case first.
	assert.Equal(t, []string{"Zed", "age", "boss", "name", "pets"}, names)

	assert.Equal(t, KindAttribute, props[0].Kind)
	assert.NotNil(t, props[0].Attribute)
	assert.Nil(t, props[0].Relationship)
	assert.Equal(t, KindRelationship, props[2].Kind)
	assert.Equal(t, "Person", props[2].Relationship.DestinationEntityName)
}

func TestStoredPropertiesSkipsTransient(t *testing.T) {
	e := Entity{
		Attributes: []Attribute{
			{Name: "cache", Type: String, Transient: true},
			{Name: "title", Type: String},
		},
		Relationships: []Relationship{
			{Name: "scratch", DestinationEntityName: "Note", Transient: true},
		},
	}
	props := e.StoredProperties()
	require.Len(t, props, 1)
	assert.Equal(t, "title", props[0].Name)
	assert.Len(t, e.Properties(), 3)
}

func TestToMany(t *testing.T) {
	tests := []struct {
		max  int
		want bool
	}{
		{max: 0, want: true},
		{max: 1, want: false},
		{max: 2, want: true},
		{max: 100, want: true},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("max=%d", tt.max), func(t *testing.T) {
			r := Relationship{MaxCount: tt.max}
			assert.Equal(t, tt.want, r.ToMany())
		})
	}
}

func TestModelAttributesFlattensInDocumentOrder(t *testing.T) {
	m := Model{Entities: []Entity{
		{Name: "B", Attributes: []Attribute{{Name: "z"}, {Name: "a"}}},
		{Name: "A", Attributes: []Attribute{{Name: "m"}}},
	}}
	var names []string
	for _, a := range m.Attributes() {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"z", "a", "m"}, names)
}

func TestClassNameResolution(t *testing.T) {
	m := Model{Entities: []Entity{{Name: "Animal", ClassName: "RFAnimal"}}}
	assert.Equal(t, "RFAnimal", m.ClassName("Animal"))
	assert.Equal(t, "Ghost", m.ClassName("Ghost"))
}

func TestParseAttributeType(t *testing.T) {
	tests := map[string]AttributeType{
		"Binary Data":   BinaryData,
		"Boolean":       Boolean,
		"Date":          Date,
		"Decimal":       Decimal,
		"Double":        Double,
		"Float":         Float,
		"Integer 16":    Integer16,
		"Integer 32":    Integer32,
		"Integer 64":    Integer64,
		"Object ID":     ObjectID,
		"String":        String,
		"Transformable": Transformable,
		"Integer32":     Undefined,
		"":              Undefined,
		"Undefined":     Undefined,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseAttributeType(in), "input %q", in)
	}
	assert.Equal(t, "Integer 32", Integer32.String())
}

func TestErrorsMatchSentinels(t *testing.T) {
	var err error = &SchemaError{Entity: "Person", Attribute: "representedClassName", Message: "missing required attribute"}
	wrapped := fmt.Errorf("scan: %w", err)
	assert.True(t, errors.Is(wrapped, ErrInvalidSchema))
	assert.False(t, errors.Is(wrapped, ErrGenerationFailed))
	assert.True(t, IsSchemaError(wrapped))
	assert.Equal(t, "modelgen: schema error on entity Person (representedClassName): missing required attribute", err.Error())

	gen := &GenerationError{Generator: "objc", File: "Person.h", Property: "tags", Message: "missing attributeValueClassName"}
	assert.True(t, errors.Is(gen, ErrGenerationFailed))
	assert.True(t, IsGenerationError(fmt.Errorf("render: %w", gen)))
	assert.Contains(t, gen.Error(), "(file: Person.h)")
}

func TestLocate(t *testing.T) {
	assert.NoError(t, Locate(nil, "objc", "A.h"))

	inner := &GenerationError{Entity: "Pet", Property: "tags", File: "keep.h"}
	err := Locate(fmt.Errorf("token: %w", inner), "objc", "Pet.h")
	var ge *GenerationError
	require.True(t, errors.As(err, &ge))
	assert.Equal(t, "objc", ge.Generator)
	assert.Equal(t, "keep.h", ge.File, "existing location is not overwritten")

	err = Locate(errors.New("boom"), "swift", "ModelUtilities-Generated.swift")
	require.True(t, errors.As(err, &ge))
	assert.Equal(t, "swift", ge.Generator)
	assert.Equal(t, "boom", errors.Unwrap(err).Error())
}

func TestEnumsMarshalAsText(t *testing.T) {
	data, err := json.Marshal(Relationship{Name: "pets", DeleteRule: Cascade})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"DeleteRule":"Cascade"`)

	data, err = json.Marshal(Attribute{Name: "age", Type: Integer32})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Type":"Integer 32"`)
}
