// Package validator provides a small, generic rule engine for checking plain
// values and a catalog of common rules built on top of it.
//
// A Rule is a predicate paired with the message reported when the predicate
// returns false. Validate evaluates a value against an ordered list of rules
// and returns a Result whose Errors preserve rule order. Every rule is
// evaluated, so a single call reports all violations, not only the first.
//
// # Architecture
//
// The package is split by concern:
//   - core.go         – Rule, CreateRule, Validate and Result
//   - predicates.go   – standalone helpers (IsValidEmail, IsNotEmpty, IsInRange, MatchesPattern)
//   - common_rules.go – rule catalog (Required, Email, MinLength, MaxLength, Min, Max, Pattern)
//   - field.go        – field-level aggregation via Field and Apply
//   - errors.go       – ValidationErrors, an error type for callers that prefer error returns
//
// There is no global mutable state. Rules close over their parameters only,
// so they can be built once (for example per form definition) and shared
// between goroutines without locking.
//
// # Usage
//
//	result := validator.Validate(email,
//	    validator.Required[string](),
//	    validator.Email,
//	    validator.MaxLength[string](254),
//	)
//	if !result.IsValid {
//	    // result.Errors holds the messages in rule order
//	}
//
// Several fields can be checked at once:
//
//	err := validator.Apply(
//	    validator.Field("email", form.Email, validator.Required[string](), validator.Email),
//	    validator.Field("age", form.Age, validator.Min(18), validator.Max(130)),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.Get("email"), verrs.Fields(), ...
//	}
//
// # Error Handling
//
// A failing rule is data, not a fault: it adds a message to Result.Errors.
// Result.Err and Apply convert failures into ValidationErrors, which matches
// ErrValidationFailed under errors.Is. Predicates must be total; a predicate
// that panics propagates the panic to the caller.
//
// The email check is intentionally permissive (something@something.something)
// and does not attempt RFC 5322 validation.
package validator
