package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"unicode/utf8"
)

const (
	MessageRequired = "This field is required"
	MessageEmail    = "Please enter a valid email address"
)

// Email fails for strings that IsValidEmail rejects.
var Email = EmailOf[string]()

// Required fails for nil values (nil interface, pointer, map, slice, chan,
// func) and for the empty string. Zero numbers, false and whitespace-only
// strings pass.
func Required[T any]() Rule[T] {
	return CreateRule(func(value T) bool {
		return isPresent(value)
	}, MessageRequired)
}

// NotEmpty is the whitespace-aware variant of Required for strings.
func NotEmpty[S ~string]() Rule[S] {
	return CreateRule(func(value S) bool {
		return IsNotEmpty(string(value))
	}, MessageRequired)
}

// EmailOf is Email for named string types.
func EmailOf[S ~string]() Rule[S] {
	return CreateRule(func(value S) bool {
		return IsValidEmail(string(value))
	}, MessageEmail)
}

// MinLength counts characters (runes), not bytes or UTF-16 code units, so a
// character outside the Basic Multilingual Plane such as an emoji counts once.
func MinLength[S ~string](min int) Rule[S] {
	return CreateRule(func(value S) bool {
		return utf8.RuneCountInString(string(value)) >= min
	}, fmt.Sprintf("Must be at least %d characters long", min))
}

// MaxLength counts characters (runes) like MinLength.
func MaxLength[S ~string](max int) Rule[S] {
	return CreateRule(func(value S) bool {
		return utf8.RuneCountInString(string(value)) <= max
	}, fmt.Sprintf("Must be no more than %d characters long", max))
}

// Min fails for values below min.
func Min[N Numeric](min N) Rule[N] {
	return CreateRule(func(value N) bool {
		return value >= min
	}, fmt.Sprintf("Must be at least %v", min))
}

// Max fails for values above max.
func Max[N Numeric](max N) Rule[N] {
	return CreateRule(func(value N) bool {
		return value <= max
	}, fmt.Sprintf("Must be no more than %v", max))
}

// InRange fails for values outside [min, max].
func InRange[N Numeric](min, max N) Rule[N] {
	return CreateRule(func(value N) bool {
		return IsInRange(value, min, max)
	}, fmt.Sprintf("Must be between %v and %v", min, max))
}

// Pattern wraps MatchesPattern with a caller-supplied message. Compile the
// expression once and reuse the rule.
func Pattern[S ~string](pattern *regexp.Regexp, message string) Rule[S] {
	return CreateRule(func(value S) bool {
		return MatchesPattern(string(value), pattern)
	}, message)
}

func isPresent(value any) bool {
	if value == nil {
		return false
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
		return !rv.IsNil()
	default:
		return true
	}
}
