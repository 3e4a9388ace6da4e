// Package typemap translates schema types into target-language type tokens.
//
// Tables are plain values built by constructor functions, so every caller
// gets its own copy and there is no shared mutable state.
package typemap

import (
	"fmt"

	"github.com/Alia5/modelgen/internal/codegen/model"
)

// UndefinedToken is emitted for attributes whose schema type was not
// recognised. It is deliberately not a valid type in any target language.
const UndefinedToken = "UNDEFINED_ATTRIBUTE_TYPE"

// ValueClassNameKey is the metadata key naming the concrete class of a
// transformable attribute.
const ValueClassNameKey = "attributeValueClassName"

// Token is a rendered type together with whether it denotes a reference
// (pointer/object) type in the target language.
type Token struct {
	Text      string
	Reference bool
}

// Table holds the type tokens for one language. Transformable entries and
// the relationship formats carry a single %s verb for a class name.
type Table struct {
	Language   string
	Attributes map[model.AttributeType]Token
	ToOne      string
	ToMany     string
}

// Attribute resolves the token for an attribute. Transformable attributes
// need the ValueClassNameKey metadata entry; its absence is returned as a
// *model.GenerationError.
func (t Table) Attribute(a *model.Attribute) (Token, error) {
	tok, ok := t.Attributes[a.Type]
	if !ok {
		tok = t.Attributes[model.Undefined]
	}
	if a.Type != model.Transformable {
		return tok, nil
	}
	class, err := ValueClassName(a)
	if err != nil {
		return Token{}, err
	}
	return Token{Text: fmt.Sprintf(tok.Text, class), Reference: tok.Reference}, nil
}

// Relationship resolves the token for a relationship whose destination class
// has already been looked up. Relationships are always references.
func (t Table) Relationship(r *model.Relationship, destClass string) Token {
	format := t.ToOne
	if r.ToMany() {
		format = t.ToMany
	}
	return Token{Text: fmt.Sprintf(format, destClass), Reference: true}
}

// ValueClassName returns the concrete class of a transformable attribute.
func ValueClassName(a *model.Attribute) (string, error) {
	class, ok := a.UserInfo[ValueClassNameKey]
	if !ok || class == "" {
		return "", &model.GenerationError{
			Entity:   a.EntityName,
			Property: a.Name,
			Message:  fmt.Sprintf("transformable attribute needs a %q metadata entry", ValueClassNameKey),
		}
	}
	return class, nil
}
