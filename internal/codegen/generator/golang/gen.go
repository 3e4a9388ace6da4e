// Package golang renders plain Go structs mirroring the schema, one file per
// entity plus an index of entity names.
package golang

import (
	"bytes"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/Alia5/modelgen/internal/codegen/common"
	"github.com/Alia5/modelgen/internal/codegen/meta"
	"github.com/Alia5/modelgen/internal/codegen/model"
)

// Name is the registry key of this generator.
const Name = "go"

// IndexFile lists every entity.
const IndexFile = "entities.go"

// Generate renders one struct file per entity in document order followed by
// the index file.
func Generate(m *model.Model, opts meta.Options) ([]model.File, error) {
	opts = opts.WithDefaults()

	files := make([]model.File, 0, len(m.Entities)+1)
	for i := range m.Entities {
		e := &m.Entities[i]
		name := FileName(e)
		f, err := entityFile(m, e, opts.GoPackage)
		if err != nil {
			return nil, model.Locate(err, Name, name)
		}
		lines, err := render(f)
		if err != nil {
			return nil, model.Locate(err, Name, name)
		}
		files = append(files, model.File{Name: name, Lines: lines})
	}

	lines, err := render(indexFile(m, opts.GoPackage))
	if err != nil {
		return nil, model.Locate(err, Name, IndexFile)
	}
	return append(files, model.File{Name: IndexFile, Lines: lines}), nil
}

// FileName is the Go source file holding an entity's struct.
func FileName(e *model.Entity) string {
	return common.ToSnakeCase(e.Name) + ".go"
}

func newFile(pkg string) *jen.File {
	f := jen.NewFile(pkg)
	f.HeaderComment("Code generated by modelgen. DO NOT EDIT.")
	return f
}

func render(f *jen.File) ([]string, error) {
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, &model.GenerationError{Message: "format Go source", Cause: err}
	}
	return strings.Split(buf.String(), "\n"), nil
}

func indexFile(m *model.Model, pkg string) *jen.File {
	f := newFile(pkg)

	f.Comment("Entity is implemented by every generated struct.")
	f.Type().Id("Entity").Interface(
		jen.Id("EntityName").Params().String(),
	)
	f.Line()

	names := make([]jen.Code, 0, len(m.Entities))
	for _, e := range m.Entities {
		names = append(names, jen.Lit(e.Name))
	}
	f.Comment("EntityNames lists every entity in schema order.")
	f.Var().Id("EntityNames").Op("=").Index().String().Values(names...)
	return f
}
