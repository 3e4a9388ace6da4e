package typescript

import (
	"github.com/Alia5/modelgen/internal/codegen/common"
	"github.com/Alia5/modelgen/internal/codegen/model"
	"github.com/Alia5/modelgen/internal/codegen/typemap"
)

// fieldType widens optional reference fields with null. Optional value
// fields are only marked with "?".
func fieldType(p model.Property, tok typemap.Token) string {
	if p.Optional && tok.Reference {
		return tok.Text + " | null"
	}
	return tok.Text
}

func writeFileHeaderTS() string { return common.FileHeader("//") }
