package common

// GeneratedMarker is the first line of every generated source file.
const GeneratedMarker = "modelgen generated"

// FileHeader returns the generated-file banner for a line comment prefix.
func FileHeader(comment string) string {
	return comment + " " + GeneratedMarker
}
