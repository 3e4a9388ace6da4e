package meta

// DefaultBaseClass is the superclass of root entities in the Objective-C output.
const DefaultBaseClass = "JOManagedObject"

// DefaultGoPackage is the package clause of the Go output.
const DefaultGoPackage = "model"

// Options holds the knobs shared between the generator orchestrator and the
// language-specific generators.
type Options struct {
	BaseClass string // Objective-C superclass for root entities
	GoPackage string // Package name for the Go backend
}

// WithDefaults fills empty fields with their defaults.
func (o Options) WithDefaults() Options {
	if o.BaseClass == "" {
		o.BaseClass = DefaultBaseClass
	}
	if o.GoPackage == "" {
		o.GoPackage = DefaultGoPackage
	}
	return o
}
