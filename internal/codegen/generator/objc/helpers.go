package objc

import (
	"strings"

	"github.com/Alia5/modelgen/internal/codegen/model"
	"github.com/Alia5/modelgen/internal/codegen/typemap"
)

func importLine(name string) string {
	return `#import "` + name + `.h"`
}

func token(m *model.Model, p model.Property, table typemap.Table) (typemap.Token, error) {
	if p.IsRelationship() {
		r := p.Relationship
		return table.Relationship(r, m.ClassName(r.DestinationEntityName)), nil
	}
	return table.Attribute(p.Attribute)
}

// modifiers returns the property attribute list. Nullability and retain only
// make sense for object types, so scalars get a bare nonatomic.
func modifiers(p model.Property, tok typemap.Token) []string {
	mods := make([]string, 0, 3)
	if p.Optional && tok.Reference {
		mods = append(mods, "nullable")
	}
	mods = append(mods, "nonatomic")
	if tok.Reference {
		mods = append(mods, "retain")
	}
	return mods
}

func propertyLine(p model.Property, tok typemap.Token) string {
	return "@property (" + strings.Join(modifiers(p, tok), ", ") + ") " + tok.Text + p.Name + ";"
}

// forwardDeclarations lists the destination classes of e's relationships in
// document order, each once.
func forwardDeclarations(m *model.Model, e *model.Entity) []string {
	seen := make(map[string]bool, len(e.Relationships))
	var out []string
	for _, r := range e.Relationships {
		class := m.ClassName(r.DestinationEntityName)
		if seen[class] {
			continue
		}
		seen[class] = true
		out = append(out, class)
	}
	return out
}
