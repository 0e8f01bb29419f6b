package validator

import (
	"regexp"
	"strings"
	"unicode"
)

// nonSpace excludes the whitespace set recognised by browsers' \s, which is
// wider than RE2's: vertical tab, every Unicode space separator and the BOM.
const nonSpace = `[^\s\v\p{Z}\x{FEFF}@]+`

var emailRegex = regexp.MustCompile(`^` + nonSpace + `@` + nonSpace + `\.` + nonSpace + `$`)

// IsValidEmail performs a permissive structural check: something@something.something
// with no whitespace or extra @ in any part. It is not an RFC 5322 parser.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsNotEmpty reports whether s has content once surrounding whitespace is
// trimmed. Whitespace is the same set the email check excludes.
func IsNotEmpty(s string) bool {
	return strings.TrimFunc(s, isSpace) != ""
}

// isSpace matches the browser whitespace set: Unicode White_Space without
// U+0085, plus the BOM.
func isSpace(r rune) bool {
	return (unicode.IsSpace(r) && r != '\u0085') || r == '\uFEFF'
}

// IsInRange reports whether min <= value <= max.
func IsInRange[N Numeric](value, min, max N) bool {
	return value >= min && value <= max
}

// MatchesPattern reports whether pattern matches s. No anchors are added;
// use ^ and $ in the pattern to require a full match.
func MatchesPattern(s string, pattern *regexp.Regexp) bool {
	return pattern.MatchString(s)
}
