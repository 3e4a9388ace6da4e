package model

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidSchema is matched by every SchemaError.
	ErrInvalidSchema = errors.New("modelgen: invalid schema")
	// ErrGenerationFailed is matched by every GenerationError.
	ErrGenerationFailed = errors.New("modelgen: code generation failed")
)

// SchemaError is a fatal input error found while reading a schema.
type SchemaError struct {
	Entity    string // Entity name (if known)
	Property  string // Attribute or relationship name (if applicable)
	Attribute string // Markup attribute that was missing or malformed
	Message   string
	Cause     error
}

func (e *SchemaError) Error() string {
	var b strings.Builder
	b.WriteString("modelgen: schema error")
	if e.Entity != "" {
		b.WriteString(" on entity ")
		b.WriteString(e.Entity)
	}
	if e.Property != "" {
		b.WriteString(" property ")
		b.WriteString(e.Property)
	}
	if e.Attribute != "" {
		b.WriteString(" (")
		b.WriteString(e.Attribute)
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *SchemaError) Unwrap() error { return e.Cause }

func (e *SchemaError) Is(target error) bool { return target == ErrInvalidSchema }

// GenerationError is a fatal error raised while a generator renders a file.
type GenerationError struct {
	Generator string
	File      string
	Entity    string
	Property  string
	Message   string
	Cause     error
}

func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("modelgen: generation error")
	if e.Generator != "" {
		b.WriteString(" in ")
		b.WriteString(e.Generator)
	}
	if e.File != "" {
		b.WriteString(" (file: ")
		b.WriteString(e.File)
		b.WriteString(")")
	}
	if e.Entity != "" {
		b.WriteString(" on entity ")
		b.WriteString(e.Entity)
	}
	if e.Property != "" {
		b.WriteString(" property ")
		b.WriteString(e.Property)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *GenerationError) Unwrap() error { return e.Cause }

func (e *GenerationError) Is(target error) bool { return target == ErrGenerationFailed }

// IsSchemaError reports whether err wraps a SchemaError.
func IsSchemaError(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}

// IsGenerationError reports whether err wraps a GenerationError.
func IsGenerationError(err error) bool {
	var ge *GenerationError
	return errors.As(err, &ge)
}

// Locate stamps the generator and file onto a GenerationError found in err's
// chain, filling only fields that are still empty. Any other error is wrapped
// in a new GenerationError.
func Locate(err error, generator, file string) error {
	if err == nil {
		return nil
	}
	var ge *GenerationError
	if errors.As(err, &ge) {
		if ge.Generator == "" {
			ge.Generator = generator
		}
		if ge.File == "" {
			ge.File = file
		}
		return err
	}
	return &GenerationError{Generator: generator, File: file, Cause: err}
}
