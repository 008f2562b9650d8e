package schedule

import (
	"strings"
	"unicode"
)

// NormalizeDay folds user input into the stored day-label form: trimmed,
// first letter upper-cased, remainder lower-cased ("segunda" -> "Segunda").
func NormalizeDay(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return raw
	}
	r := []rune(strings.ToLower(raw))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
