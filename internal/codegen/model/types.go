package model

// AttributeType is the closed set of attribute kinds a schema can declare.
type AttributeType int

const (
	Undefined AttributeType = iota
	BinaryData
	Boolean
	Date
	Decimal
	Double
	Float
	Integer16
	Integer32
	Integer64
	ObjectID
	String
	Transformable
)

var attributeTypeNames = [...]string{
	Undefined:     "Undefined",
	BinaryData:    "Binary Data",
	Boolean:       "Boolean",
	Date:          "Date",
	Decimal:       "Decimal",
	Double:        "Double",
	Float:         "Float",
	Integer16:     "Integer 16",
	Integer32:     "Integer 32",
	Integer64:     "Integer 64",
	ObjectID:      "Object ID",
	String:        "String",
	Transformable: "Transformable",
}

// String returns the schema spelling of the type.
func (t AttributeType) String() string {
	if t < 0 || int(t) >= len(attributeTypeNames) {
		return attributeTypeNames[Undefined]
	}
	return attributeTypeNames[t]
}

// ParseAttributeType maps a schema spelling to its AttributeType. Unknown
// spellings map to Undefined rather than failing.
func ParseAttributeType(s string) AttributeType {
	for t, name := range attributeTypeNames {
		if AttributeType(t) != Undefined && name == s {
			return AttributeType(t)
		}
	}
	return Undefined
}

// DeleteRule is what happens to a relationship's destination when the source
// object is deleted.
type DeleteRule int

const (
	NoAction DeleteRule = iota
	Nullify
	Cascade
	Deny
)

func (r DeleteRule) String() string {
	switch r {
	case Nullify:
		return "Nullify"
	case Cascade:
		return "Cascade"
	case Deny:
		return "Deny"
	default:
		return "No Action"
	}
}

// ParseDeleteRule maps a schema spelling to its DeleteRule, defaulting to NoAction.
func ParseDeleteRule(s string) DeleteRule {
	switch s {
	case "Nullify":
		return Nullify
	case "Cascade":
		return Cascade
	case "Deny":
		return Deny
	default:
		return NoAction
	}
}

// MarshalText renders the schema spelling, so dumps of the model stay readable.
func (t AttributeType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (r DeleteRule) MarshalText() ([]byte, error) { return []byte(r.String()), nil }
