package common

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// UpperFirst upper-cases the first character and leaves the rest untouched.
// Example: "pets" -> "Pets", "uRL" -> "URL".
func UpperFirst(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// ToPascalCase joins words split on '_', '-' and spaces, upper-casing the
// first letter of each word. Inner capitals survive: "first_name" and
// "firstName" both become "FirstName".
func ToPascalCase(s string) string {
	if s == "" {
		return ""
	}

	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	})

	var result strings.Builder
	for _, word := range words {
		result.WriteString(UpperFirst(word))
	}

	return result.String()
}

func ToSnakeCase(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		isUpper := r >= 'A' && r <= 'Z'

		if i > 0 && isUpper {
			// Check if previous char is lowercase (e.g., "someWord" -> "some_word")
			prevIsLower := runes[i-1] >= 'a' && runes[i-1] <= 'z'

			// Check if next char is lowercase (e.g., "XMLParser" -> "xml_parser", not "x_m_l_parser")
			nextIsLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'

			prevIsSep := runes[i-1] == '_' || runes[i-1] == '-' || runes[i-1] == ' '

			if (prevIsLower || nextIsLower) && !prevIsSep {
				b.WriteByte('_')
			}
		}
		if r == ' ' || r == '-' {
			r = '_'
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}
