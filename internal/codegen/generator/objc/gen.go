// Package objc renders Objective-C class headers for a parsed model: one
// header per entity, an umbrella header importing all of them and the shared
// base class.
package objc

import (
	"github.com/Alia5/modelgen/internal/codegen/common"
	"github.com/Alia5/modelgen/internal/codegen/meta"
	"github.com/Alia5/modelgen/internal/codegen/model"
	"github.com/Alia5/modelgen/internal/codegen/typemap"
)

// Name is the registry key of this generator.
const Name = "objc"

// AllHeadersFile imports every entity header.
const AllHeadersFile = "Model-All.h"

// Generate renders the entity headers in document order followed by the
// umbrella header and the base class header.
func Generate(m *model.Model, opts meta.Options) ([]model.File, error) {
	opts = opts.WithDefaults()
	table := typemap.ObjC()

	files := make([]model.File, 0, len(m.Entities)+2)
	for i := range m.Entities {
		e := &m.Entities[i]
		f, err := entityHeader(m, e, table, opts)
		if err != nil {
			return nil, model.Locate(err, Name, headerName(e.Name))
		}
		files = append(files, f)
	}
	files = append(files, allHeaders(m), baseClassHeader(opts.BaseClass))
	return files, nil
}

func headerName(name string) string { return name + ".h" }

func allHeaders(m *model.Model) model.File {
	lines := []string{common.FileHeader("//")}
	for _, e := range m.Entities {
		lines = append(lines, importLine(e.Name))
	}
	lines = append(lines, "")
	return model.File{Name: AllHeadersFile, Lines: lines}
}

func baseClassHeader(base string) model.File {
	return model.File{
		Name: headerName(base),
		Lines: []string{
			common.FileHeader("//"),
			"#import <CoreData/CoreData.h>",
			"",
			"@interface " + base + ": NSManagedObject",
			"@end",
			"",
			"@implementation " + base,
			"@end",
			"",
		},
	}
}
