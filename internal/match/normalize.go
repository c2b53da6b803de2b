package match

import (
	"strings"
	"unicode"
)

// Normalize lowercases s and drops separators, so that "log_level",
// "LogLevel" and "loglevel" compare equal.
func Normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			return -1
		}

		return unicode.ToLower(r)
	}, s)
}
