package mapping

import (
	"strings"
	"unicode"
)

// CamelToSnake converts a Go identifier to its snake_case external form.
func CamelToSnake(s string) string {
	if s == "ID" {
		return "id"
	}
	var res []rune
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(rune(s[i-1])) || (i+1 < len(s) && unicode.IsLower(rune(s[i+1])))) {
				res = append(res, '_')
			}
			res = append(res, unicode.ToLower(r))
		} else {
			res = append(res, r)
		}
	}
	return string(res)
}

// Quote wraps a case-sensitive identifier in double quotes, doubling any
// embedded quote, so the external layer emits it verbatim.
func Quote(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// decapitalize derives the logical property name from an exported Go
// member name: K -> k, UserName -> userName. All-caps identifiers are
// lowered whole (ID -> id).
func decapitalize(s string) string {
	if s == "" {
		return s
	}
	if len(s) > 1 && s == strings.ToUpper(s) {
		return strings.ToLower(s)
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
