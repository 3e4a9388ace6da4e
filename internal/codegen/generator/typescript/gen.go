// Package typescript renders TypeScript interfaces for a parsed model.
package typescript

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/Alia5/modelgen/internal/codegen/meta"
	"github.com/Alia5/modelgen/internal/codegen/model"
	"github.com/Alia5/modelgen/internal/codegen/typemap"
)

// Name is the registry key of this generator.
const Name = "typescript"

// Generate renders one interface file per entity in document order followed
// by index.ts.
func Generate(m *model.Model, _ meta.Options) ([]model.File, error) {
	table := typemap.TypeScript()

	files := make([]model.File, 0, len(m.Entities)+1)
	for i := range m.Entities {
		e := &m.Entities[i]
		name := FileName(e)
		view, err := newInterfaceView(m, e, table)
		if err != nil {
			return nil, model.Locate(err, Name, name)
		}
		lines, err := execute(interfaceTmpl, view)
		if err != nil {
			return nil, model.Locate(err, Name, name)
		}
		files = append(files, model.File{Name: name, Lines: lines})
	}

	lines, err := execute(indexTmpl, m.Entities)
	if err != nil {
		return nil, model.Locate(err, Name, IndexFile)
	}
	return append(files, model.File{Name: IndexFile, Lines: lines}), nil
}

// FileName is the module holding an entity's interface.
func FileName(e *model.Entity) string { return e.ClassName + ".ts" }

func execute(t *template.Template, data any) ([]string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, &model.GenerationError{Message: "execute template", Cause: err}
	}
	return strings.Split(buf.String(), "\n"), nil
}
