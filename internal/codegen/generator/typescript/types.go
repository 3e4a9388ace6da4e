package typescript

import (
	"text/template"

	"github.com/Alia5/modelgen/internal/codegen/model"
	"github.com/Alia5/modelgen/internal/codegen/typemap"
)

const interfaceTemplateTS = `{{writeFileHeaderTS}}
{{- range .Imports}}
import type { {{.}} } from './{{.}}';
{{- end}}

// {{.Name}} entity
export interface {{.ClassName}}{{with .Extends}} extends {{.}}{{end}} {
{{- range .Fields}}
  {{.Name}}{{if .Optional}}?{{end}}: {{.Type}};
{{- end}}
}
`

var interfaceTmpl = template.Must(template.New("interface").Funcs(template.FuncMap{
	"writeFileHeaderTS": writeFileHeaderTS,
}).Parse(interfaceTemplateTS))

type fieldView struct {
	Name     string
	Optional bool
	Type     string
}

type interfaceView struct {
	Name      string
	ClassName string
	Extends   string
	Imports   []string
	Fields    []fieldView
}

func newInterfaceView(m *model.Model, e *model.Entity, table typemap.Table) (interfaceView, error) {
	v := interfaceView{Name: e.Name, ClassName: e.ClassName}
	seen := map[string]bool{e.ClassName: true}
	addImport := func(class string) {
		if !seen[class] {
			seen[class] = true
			v.Imports = append(v.Imports, class)
		}
	}

	if !e.IsRoot() {
		v.Extends = m.ClassName(e.ParentEntityName)
		addImport(v.Extends)
	}
	for _, p := range e.StoredProperties() {
		var tok typemap.Token
		if p.IsRelationship() {
			dest := m.ClassName(p.Relationship.DestinationEntityName)
			addImport(dest)
			tok = table.Relationship(p.Relationship, dest)
		} else {
			var err error
			if tok, err = table.Attribute(p.Attribute); err != nil {
				return interfaceView{}, err
			}
		}
		v.Fields = append(v.Fields, fieldView{Name: p.Name, Optional: p.Optional, Type: fieldType(p, tok)})
	}
	return v, nil
}
