package swift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/modelgen/internal/codegen/meta"
	"github.com/Alia5/modelgen/internal/codegen/model"
)

func zoo() *model.Model {
	return &model.Model{Entities: []model.Entity{
		{
			Name:       "Animal",
			ClassName:  "RFAnimal",
			Attributes: []model.Attribute{{EntityName: "Animal", Name: "name", Type: model.String}},
			UserInfo:   map[string]string{SingularKey: "Creature", PluralKey: "Critters"},
		},
		{
			Name:             "Pet",
			ClassName:        "RFPet",
			ParentEntityName: "Animal",
			Attributes: []model.Attribute{
				{EntityName: "Pet", Name: "tags", Type: model.Transformable},
			},
			Relationships: []model.Relationship{
				{EntityName: "Pet", Name: "owner", DestinationEntityName: "Person", MaxCount: 1},
			},
		},
	}}
}

func block(t *testing.T, lines []string, first string, n int) []string {
	t.Helper()
	for i, l := range lines {
		if l == first {
			require.LessOrEqual(t, i+n, len(lines))
			return lines[i : i+n]
		}
	}
	require.Failf(t, "line not found", "%q", first)
	return nil
}

func TestGenerateSingleFile(t *testing.T) {
	files, err := Generate(zoo(), meta.Options{})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, FileName, files[0].Name)

	lines := files[0].Lines
	assert.Equal(t, "// modelgen generated", lines[0])
	assert.Contains(t, lines, "@objc protocol CoreDataEntity {", "prelude is embedded")
	assert.Equal(t, "", lines[len(lines)-1])
	assert.Equal(t, "}", lines[len(lines)-2])
}

func TestChildEntityBlock(t *testing.T) {
	files, err := Generate(zoo(), meta.Options{})
	require.NoError(t, err)

	want := []string{
		"@objc class PetProperties: NSObject {",
		`	class var owner: CoreDataRelationship { return CoreDataRelationship(key: "owner", localizedName: "", toMany: false) }`,
		`	class var tags: CoreDataAttribute { return CoreDataAttribute(key: "tags", localizedName: "", format: RFSFormat.None) }`,
		"}",
		"",
		"@objc class PetRelationships: NSObject {",
		`	class var owner: String { return "owner" }`,
		"}",
		"",
		"@objc class PetAttributes: NSObject {",
		`	class var tags: String { return "tags" }`,
		"}",
		"",
		"extension RFPet {",
		`	override class func entityName() -> String { return "Pet" }`,
		`	override class func inMain() -> RFPet { return NSEntityDescription.insertNewObject(forEntityName: "Pet", into: RFSDataController.shared().managedObjectContext) as! RFPet }`,
		`	override class func insertInManagedObjectContext(_ moc: NSManagedObjectContext) -> RFPet { return NSEntityDescription.insertNewObject(forEntityName: "Pet", into: moc) as! RFPet }`,
		`	override class func localizedNameSingular() -> String { return "Pet" }`,
		`	override class func localizedNamePlural() -> String { return "Pets" }`,
		`	override class func properties() -> [CoreDataProperty] { return [ PetProperties.owner, PetProperties.tags ] }`,
		`	override var shortUniqueID: String { return uniqueID.truncatedToLength(8) }`,
		"}",
		"",
	}
	assert.Equal(t, want, block(t, files[0].Lines, want[0], len(want)))
}

func TestRootEntityConformance(t *testing.T) {
	files, err := Generate(zoo(), meta.Options{})
	require.NoError(t, err)

	lines := files[0].Lines
	assert.Contains(t, lines, "extension RFAnimal: CoreDataEntity {")
	assert.Contains(t, lines, `	class func localizedNameSingular() -> String { return "Creature" }`)
	assert.Contains(t, lines, `	class func localizedNamePlural() -> String { return "Critters" }`)
	assert.Contains(t, lines, "@objc class AnimalRelationships: NSObject {")

	empty := block(t, lines, "@objc class AnimalRelationships: NSObject {", 2)
	assert.Equal(t, "}", empty[1], "entities without relationships get an empty class")
}

func TestDisplayNames(t *testing.T) {
	tests := []struct {
		name     string
		entity   model.Entity
		singular string
		plural   string
	}{
		{"metadata", model.Entity{Name: "Person", UserInfo: map[string]string{SingularKey: "Human", PluralKey: "Humans"}}, "Human", "Humans"},
		{"inflected", model.Entity{Name: "Category"}, "Category", "Categories"},
		{"singular only", model.Entity{Name: "X", UserInfo: map[string]string{SingularKey: "Box"}}, "Box", "Boxes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			singular, plural := DisplayNames(&tt.entity)
			assert.Equal(t, tt.singular, singular)
			assert.Equal(t, tt.plural, plural)
		})
	}
}

func TestQuoteEscapes(t *testing.T) {
	assert.Equal(t, `"say \"hi\""`, quote(`say "hi"`))
	assert.Equal(t, `"a\\b"`, quote(`a\b`))
}

func TestEmptyModelIsPreludeOnly(t *testing.T) {
	files, err := Generate(&model.Model{}, meta.Options{})
	require.NoError(t, err)
	require.Len(t, files, 1)
	for _, l := range files[0].Lines {
		assert.NotContains(t, l, "extension RF")
	}
}

func TestGenerateIsIdempotent(t *testing.T) {
	first, err := Generate(zoo(), meta.Options{})
	require.NoError(t, err)
	second, err := Generate(zoo(), meta.Options{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
