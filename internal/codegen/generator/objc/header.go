package objc

import (
	"github.com/Alia5/modelgen/internal/codegen/common"
	"github.com/Alia5/modelgen/internal/codegen/meta"
	"github.com/Alia5/modelgen/internal/codegen/model"
	"github.com/Alia5/modelgen/internal/codegen/typemap"
)

func entityHeader(m *model.Model, e *model.Entity, table typemap.Table, opts meta.Options) (model.File, error) {
	props := e.StoredProperties()
	decls := make([]string, 0, len(props))
	for _, p := range props {
		tok, err := token(m, p, table)
		if err != nil {
			return model.File{}, err
		}
		decls = append(decls, propertyLine(p, tok))
	}

	lines := []string{
		common.FileHeader("//"),
		importLine(opts.BaseClass),
	}
	super := opts.BaseClass
	if !e.IsRoot() {
		super = m.ClassName(e.ParentEntityName)
		lines = append(lines, "", importLine(e.ParentEntityName), "")
	}
	for _, class := range forwardDeclarations(m, e) {
		lines = append(lines, "@class "+class+";")
	}

	lines = append(lines,
		"NS_ASSUME_NONNULL_BEGIN",
		"",
		"@interface "+e.ClassName+": "+super,
		"",
	)
	lines = append(lines, decls...)
	lines = append(lines, "", "@end")
	lines = append(lines, accessors(m, e, table)...)
	lines = append(lines,
		"",
		"NS_ASSUME_NONNULL_END",
		"",
		"",
		"@implementation "+e.ClassName,
		"",
	)
	for _, p := range props {
		lines = append(lines, "@dynamic "+p.Name+";")
	}
	lines = append(lines, "", "@end", "")

	return model.File{Name: headerName(e.Name), Lines: lines}, nil
}

// accessors declares the add/remove mutators of every to-many relationship in
// a CoreDataGeneratedAccessors category. Entities without one get no block.
func accessors(m *model.Model, e *model.Entity, table typemap.Table) []string {
	var body []string
	for i := range e.Relationships {
		r := &e.Relationships[i]
		if !r.ToMany() {
			continue
		}
		set := table.Relationship(r, m.ClassName(r.DestinationEntityName)).Text
		suffix := common.UpperFirst(r.Name)
		body = append(body,
			"- (void)add"+suffix+":("+set+")values;",
			"- (void)remove"+suffix+":("+set+")values;",
		)
	}
	if len(body) == 0 {
		return nil
	}
	lines := []string{"", "@interface " + e.ClassName + " (CoreDataGeneratedAccessors)", ""}
	lines = append(lines, body...)
	return append(lines, "", "@end")
}
