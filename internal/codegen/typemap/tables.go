package typemap

import "github.com/Alia5/modelgen/internal/codegen/model"

// ObjC is the Objective-C table. Tokens keep their trailing separator so a
// property name can be appended directly ("NSString *name", "BOOL flag").
func ObjC() Table {
	return Table{
		Language: "objc",
		Attributes: map[model.AttributeType]Token{
			model.BinaryData:    {Text: "NSData *", Reference: true},
			model.Boolean:       {Text: "BOOL "},
			model.Date:          {Text: "NSDate *", Reference: true},
			model.Decimal:       {Text: "NSDecimalNumber *", Reference: true},
			model.Double:        {Text: "double "},
			model.Float:         {Text: "float "},
			model.Integer16:     {Text: "int16_t "},
			model.Integer32:     {Text: "int32_t "},
			model.Integer64:     {Text: "int64_t "},
			model.ObjectID:      {Text: "NSManagedObjectID *", Reference: true},
			model.String:        {Text: "NSString *", Reference: true},
			model.Transformable: {Text: "%s *", Reference: true},
			model.Undefined:     {Text: UndefinedToken + " "},
		},
		ToOne:  "%s *",
		ToMany: "NSSet<%s *> *",
	}
}

// TypeScript is the TypeScript table.
func TypeScript() Table {
	return Table{
		Language: "typescript",
		Attributes: map[model.AttributeType]Token{
			model.BinaryData:    {Text: "Uint8Array", Reference: true},
			model.Boolean:       {Text: "boolean"},
			model.Date:          {Text: "Date", Reference: true},
			model.Decimal:       {Text: "string", Reference: true},
			model.Double:        {Text: "number"},
			model.Float:         {Text: "number"},
			model.Integer16:     {Text: "number"},
			model.Integer32:     {Text: "number"},
			model.Integer64:     {Text: "bigint"},
			model.ObjectID:      {Text: "string", Reference: true},
			model.String:        {Text: "string", Reference: true},
			model.Transformable: {Text: "%s", Reference: true},
			model.Undefined:     {Text: UndefinedToken},
		},
		ToOne:  "%s",
		ToMany: "%s[]",
	}
}
