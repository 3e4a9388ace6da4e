package golang

import (
	"github.com/dave/jennifer/jen"

	"github.com/Alia5/modelgen/internal/codegen/common"
	"github.com/Alia5/modelgen/internal/codegen/model"
	"github.com/Alia5/modelgen/internal/codegen/typemap"
)

// typeName turns a class name into an exported Go identifier.
func typeName(class string) string {
	return common.SanitizeLeadingDigit(common.ToPascalCase(class))
}

// fieldName exports a property name: "first_name" and "firstName" both
// become FirstName.
func fieldName(name string) string {
	return common.SanitizeLeadingDigit(common.ToPascalCase(name))
}

type goType struct {
	code    jen.Code
	nilable bool // Optional fields of nilable types are not wrapped in a pointer
	comment string
}

func attributeType(a *model.Attribute) (goType, error) {
	switch a.Type {
	case model.BinaryData:
		return goType{code: jen.Index().Byte(), nilable: true}, nil
	case model.Boolean:
		return goType{code: jen.Bool()}, nil
	case model.Date:
		return goType{code: jen.Qual("time", "Time")}, nil
	case model.Decimal:
		return goType{code: jen.String(), comment: "decimal"}, nil
	case model.Double:
		return goType{code: jen.Float64()}, nil
	case model.Float:
		return goType{code: jen.Float32()}, nil
	case model.Integer16:
		return goType{code: jen.Int16()}, nil
	case model.Integer32:
		return goType{code: jen.Int32()}, nil
	case model.Integer64:
		return goType{code: jen.Int64()}, nil
	case model.ObjectID:
		return goType{code: jen.String(), comment: "object id"}, nil
	case model.String:
		return goType{code: jen.String()}, nil
	case model.Transformable:
		class, err := typemap.ValueClassName(a)
		if err != nil {
			return goType{}, err
		}
		return goType{code: jen.Qual("encoding/json", "RawMessage"), nilable: true, comment: class}, nil
	default:
		return goType{code: jen.Id(typemap.UndefinedToken)}, nil
	}
}
