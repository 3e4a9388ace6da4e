package golang

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/modelgen/internal/codegen/meta"
	"github.com/Alia5/modelgen/internal/codegen/model"
)

func zoo() *model.Model {
	return &model.Model{Entities: []model.Entity{
		{
			Name:      "Person",
			ClassName: "RFPerson",
			Attributes: []model.Attribute{
				{EntityName: "Person", Name: "age", Type: model.Integer32, Optional: true},
				{EntityName: "Person", Name: "born", Type: model.Date},
				{EntityName: "Person", Name: "name", Type: model.String},
				{EntityName: "Person", Name: "scratch", Type: model.String, Transient: true},
			},
			Relationships: []model.Relationship{
				{EntityName: "Person", Name: "pets", DestinationEntityName: "Pet", DeleteRule: model.Cascade, Optional: true},
			},
		},
		{Name: "Animal", ClassName: "RFAnimal"},
		{
			Name:             "Pet",
			ClassName:        "RFPet",
			ParentEntityName: "Animal",
			Attributes: []model.Attribute{
				{EntityName: "Pet", Name: "photo", Type: model.BinaryData, Optional: true},
				{EntityName: "Pet", Name: "tags", Type: model.Transformable, Optional: true,
					UserInfo: map[string]string{"attributeValueClassName": "NSArray"}},
			},
			Relationships: []model.Relationship{
				{EntityName: "Pet", Name: "owner", DestinationEntityName: "Person", MaxCount: 1, DeleteRule: model.Nullify},
			},
		},
	}}
}

func source(t *testing.T, files []model.File, name string) string {
	t.Helper()
	for _, f := range files {
		if f.Name == name {
			return strings.Join(f.Lines, "\n")
		}
	}
	require.Failf(t, "file not generated", "%s", name)
	return ""
}

func TestGenerateFileNames(t *testing.T) {
	files, err := Generate(zoo(), meta.Options{})
	require.NoError(t, err)

	var names []string
	for _, f := range files {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"person.go", "animal.go", "pet.go", "entities.go"}, names)
}

func TestGenerateRootStruct(t *testing.T) {
	files, err := Generate(zoo(), meta.Options{})
	require.NoError(t, err)
	src := source(t, files, "person.go")

	assert.True(t, strings.HasPrefix(src, "// Code generated by modelgen. DO NOT EDIT."))
	assert.Contains(t, src, "package model")
	assert.Contains(t, src, "type RFPerson struct {")
	assert.Regexp(t, "Age\\s+\\*int32\\s+`json:\"age,omitempty\"`", src)
	assert.Regexp(t, "Born\\s+time\\.Time\\s+`json:\"born\"`", src)
	assert.Regexp(t, "Name\\s+string\\s+`json:\"name\"`", src)
	assert.Regexp(t, "Pets\\s+\\[\\]\\*RFPet\\s+`json:\"pets,omitempty\"`\\s+// delete rule: Cascade", src)
	assert.NotContains(t, src, "Scratch")
	assert.Contains(t, src, `"time"`)
	assert.Contains(t, src, "func (RFPerson) EntityName() string {")
	assert.Contains(t, src, `return "Person"`)

	age := strings.Index(src, "Age ")
	pets := strings.Index(src, "Pets ")
	assert.Less(t, age, pets, "fields follow the sorted property order")
}

func TestGenerateChildStruct(t *testing.T) {
	files, err := Generate(zoo(), meta.Options{})
	require.NoError(t, err)
	src := source(t, files, "pet.go")

	assert.Regexp(t, "type RFPet struct \\{\\n\\tRFAnimal\\n", src)
	assert.Regexp(t, "Owner\\s+\\*RFPerson\\s+`json:\"owner\"`\\s+// delete rule: Nullify", src)
	assert.Regexp(t, "Photo\\s+\\[\\]byte\\s+`json:\"photo,omitempty\"`", src)
	assert.Regexp(t, "Tags\\s+json\\.RawMessage\\s+`json:\"tags,omitempty\"`\\s+// NSArray", src)
}

func TestDanglingParentIsCommented(t *testing.T) {
	m := &model.Model{Entities: []model.Entity{{Name: "Orphan", ClassName: "Orphan", ParentEntityName: "Ghost"}}}
	files, err := Generate(m, meta.Options{})
	require.NoError(t, err)
	assert.Contains(t, source(t, files, "orphan.go"), "// parent entity Ghost is not in the model")
}

func TestIndexFile(t *testing.T) {
	files, err := Generate(zoo(), meta.Options{GoPackage: "zoo"})
	require.NoError(t, err)
	src := source(t, files, IndexFile)

	assert.Contains(t, src, "package zoo")
	assert.Contains(t, src, "type Entity interface {")
	assert.Contains(t, src, `var EntityNames = []string{"Person", "Animal", "Pet"}`)
}

func TestTransformableWithoutClassName(t *testing.T) {
	m := &model.Model{Entities: []model.Entity{{
		Name:       "Pet",
		ClassName:  "RFPet",
		Attributes: []model.Attribute{{EntityName: "Pet", Name: "tags", Type: model.Transformable}},
	}}}
	_, err := Generate(m, meta.Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrGenerationFailed))

	var ge *model.GenerationError
	require.True(t, errors.As(err, &ge))
	assert.Equal(t, Name, ge.Generator)
	assert.Equal(t, "pet.go", ge.File)
}

func TestEmptyModel(t *testing.T) {
	files, err := Generate(&model.Model{}, meta.Options{})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, IndexFile, files[0].Name)
	assert.Contains(t, source(t, files, IndexFile), "var EntityNames = []string{}")
}

func TestGenerateIsIdempotent(t *testing.T) {
	first, err := Generate(zoo(), meta.Options{})
	require.NoError(t, err)
	second, err := Generate(zoo(), meta.Options{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestIdentifiersAndUserInfo(t *testing.T) {
	m := &model.Model{Entities: []model.Entity{{
		Name:      "Card3D",
		ClassName: "3DCard",
		Attributes: []model.Attribute{
			{EntityName: "Card3D", Name: "first_name", Type: model.String},
		},
		UserInfo: map[string]string{"NamePlural": "Cards", "NameSingular": "Card"},
	}}}
	files, err := Generate(m, meta.Options{})
	require.NoError(t, err)
	src := source(t, files, "card3d.go")

	assert.Contains(t, src, "type Num3DCard struct {")
	assert.Regexp(t, "FirstName\\s+string\\s+`json:\"first_name\"`", src)
	assert.Contains(t, src, "func (Num3DCard) UserInfo() map[string]string {")
	assert.Contains(t, src, `return map[string]string{"NamePlural": "Cards", "NameSingular": "Card"}`)
}

func TestIdentifierCollisions(t *testing.T) {
	attr := func(name string) model.Attribute {
		return model.Attribute{EntityName: "Event", Name: name, Type: model.String}
	}
	tests := []struct {
		name     string
		entity   model.Entity
		property string
	}{
		{
			name:     "snake and camel spellings",
			entity:   model.Entity{Attributes: []model.Attribute{attr("first_name"), attr("firstName")}},
			property: "firstName",
		},
		{
			name:     "EntityName method",
			entity:   model.Entity{Attributes: []model.Attribute{attr("entityName")}},
			property: "entityName",
		},
		{
			name: "UserInfo method",
			entity: model.Entity{
				Attributes: []model.Attribute{attr("userInfo")},
				UserInfo:   map[string]string{"k": "v"},
			},
			property: "userInfo",
		},
		{
			name:     "embedded parent",
			entity:   model.Entity{ParentEntityName: "Base", Attributes: []model.Attribute{attr("base")}},
			property: "base",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := tt.entity
			e.Name, e.ClassName = "Event", "Event"
			m := &model.Model{Entities: []model.Entity{e, {Name: "Base", ClassName: "Base"}}}

			files, err := Generate(m, meta.Options{})
			require.Error(t, err)
			assert.Nil(t, files)
			assert.True(t, errors.Is(err, model.ErrGenerationFailed))

			var ge *model.GenerationError
			require.True(t, errors.As(err, &ge))
			assert.Equal(t, "Event", ge.Entity)
			assert.Equal(t, tt.property, ge.Property)
			assert.Equal(t, "event.go", ge.File)
		})
	}
}

func TestUserInfoPropertyWithoutMetadata(t *testing.T) {
	m := &model.Model{Entities: []model.Entity{{
		Name:       "Event",
		ClassName:  "Event",
		Attributes: []model.Attribute{{EntityName: "Event", Name: "userInfo", Type: model.String}},
	}}}
	files, err := Generate(m, meta.Options{})
	require.NoError(t, err)
	src := source(t, files, "event.go")
	assert.Regexp(t, "UserInfo\\s+string\\s+`json:\"userInfo\"`", src)
	assert.NotContains(t, src, "func (Event) UserInfo()")
}

func TestTransientTransformableNeedsNoClassName(t *testing.T) {
	m := &model.Model{Entities: []model.Entity{{
		Name:      "Pet",
		ClassName: "RFPet",
		Attributes: []model.Attribute{
			{EntityName: "Pet", Name: "cache", Type: model.Transformable, Transient: true, UserInfo: map[string]string{}},
		},
	}}}
	files, err := Generate(m, meta.Options{})
	require.NoError(t, err)
	assert.NotContains(t, source(t, files, "pet.go"), "Cache")
}
