// Package swift renders the Swift companion file: property descriptor
// classes and CoreDataEntity conformances for every entity.
package swift

import (
	"bytes"
	_ "embed"
	"strings"
	"text/template"

	"github.com/go-openapi/inflect"

	"github.com/Alia5/modelgen/internal/codegen/common"
	"github.com/Alia5/modelgen/internal/codegen/meta"
	"github.com/Alia5/modelgen/internal/codegen/model"
)

// Name is the registry key of this generator.
const Name = "swift"

// FileName is the single file this generator produces.
const FileName = "ModelUtilities-Generated.swift"

// Metadata keys holding human-readable entity names.
const (
	SingularKey = "NameSingular"
	PluralKey   = "NamePlural"
)

//go:embed prelude.swift
var prelude string

const entityTmpl = `{{define "entity" -}}
@objc class {{.Name}}Properties: NSObject {
{{- range .Properties}}
{{- if .Relationship}}
	class var {{.Name}}: CoreDataRelationship { return CoreDataRelationship(key: "{{.Name}}", localizedName: "", toMany: {{.ToMany}}) }
{{- else}}
	class var {{.Name}}: CoreDataAttribute { return CoreDataAttribute(key: "{{.Name}}", localizedName: "", format: RFSFormat.None) }
{{- end}}
{{- end}}
}

@objc class {{.Name}}Relationships: NSObject {
{{- range .Relationships}}
	class var {{.}}: String { return "{{.}}" }
{{- end}}
}

@objc class {{.Name}}Attributes: NSObject {
{{- range .Attributes}}
	class var {{.}}: String { return "{{.}}" }
{{- end}}
}

extension {{.ClassName}}{{if .Root}}: CoreDataEntity{{end}} {
	{{override .}}class func entityName() -> String { return "{{.Name}}" }
	{{override .}}class func inMain() -> {{.ClassName}} { return NSEntityDescription.insertNewObject(forEntityName: "{{.Name}}", into: RFSDataController.shared().managedObjectContext) as! {{.ClassName}} }
	{{override .}}class func insertInManagedObjectContext(_ moc: NSManagedObjectContext) -> {{.ClassName}} { return NSEntityDescription.insertNewObject(forEntityName: "{{.Name}}", into: moc) as! {{.ClassName}} }
	{{override .}}class func localizedNameSingular() -> String { return {{quote .Singular}} }
	{{override .}}class func localizedNamePlural() -> String { return {{quote .Plural}} }
	{{override .}}class func properties() -> [CoreDataProperty] { return [ {{propertyList .}} ] }
	{{override .}}var shortUniqueID: String { return uniqueID.truncatedToLength(8) }
}
{{end}}
{{- range .}}{{template "entity" .}}
{{end}}`

var tmpl = template.Must(template.New(Name).Funcs(template.FuncMap{
	"override":     override,
	"quote":        quote,
	"propertyList": propertyList,
}).Parse(entityTmpl))

type propertyView struct {
	Name         string
	Relationship bool
	ToMany       bool
}

type entityView struct {
	Name          string
	ClassName     string
	Root          bool
	Singular      string
	Plural        string
	Properties    []propertyView
	Relationships []string
	Attributes    []string
}

// Generate renders ModelUtilities-Generated.swift. The options are accepted
// for registry uniformity; nothing in the Swift output is configurable.
func Generate(m *model.Model, _ meta.Options) ([]model.File, error) {
	views := make([]entityView, 0, len(m.Entities))
	for i := range m.Entities {
		views = append(views, newEntityView(&m.Entities[i]))
	}

	var buf bytes.Buffer
	buf.WriteString(common.FileHeader("//"))
	buf.WriteString("\n\n")
	buf.WriteString(strings.TrimRight(prelude, "\n"))
	buf.WriteString("\n\n")
	if err := tmpl.Execute(&buf, views); err != nil {
		return nil, &model.GenerationError{Generator: Name, File: FileName, Message: "execute template", Cause: err}
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	return []model.File{{Name: FileName, Lines: lines}}, nil
}

func newEntityView(e *model.Entity) entityView {
	singular, plural := DisplayNames(e)
	v := entityView{
		Name:      e.Name,
		ClassName: e.ClassName,
		Root:      e.IsRoot(),
		Singular:  singular,
		Plural:    plural,
	}
	for _, p := range e.Properties() {
		pv := propertyView{Name: p.Name, Relationship: p.IsRelationship()}
		if pv.Relationship {
			pv.ToMany = p.Relationship.ToMany()
		}
		v.Properties = append(v.Properties, pv)
	}
	for _, r := range e.Relationships {
		v.Relationships = append(v.Relationships, r.Name)
	}
	for _, a := range e.Attributes {
		v.Attributes = append(v.Attributes, a.Name)
	}
	return v
}

// DisplayNames returns the singular and plural display names of an entity.
// Missing metadata falls back to the entity name and its inflected plural.
func DisplayNames(e *model.Entity) (singular, plural string) {
	singular = e.UserInfo[SingularKey]
	if singular == "" {
		singular = e.Name
	}
	plural = e.UserInfo[PluralKey]
	if plural == "" {
		plural = inflect.Pluralize(singular)
	}
	return singular, plural
}

func override(v entityView) string {
	if v.Root {
		return ""
	}
	return "override "
}

func propertyList(v entityView) string {
	refs := make([]string, 0, len(v.Properties))
	for _, p := range v.Properties {
		refs = append(refs, v.Name+"Properties."+p.Name)
	}
	return strings.Join(refs, ", ")
}

var literalEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\t", `\t`)

// quote renders a Swift string literal.
func quote(s string) string {
	return `"` + literalEscaper.Replace(s) + `"`
}
