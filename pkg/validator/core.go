package validator

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Rule pairs a predicate with the message reported when the predicate fails.
// Rules hold no state and may be shared between goroutines.
type Rule[T any] struct {
	Check   func(T) bool
	Message string
}

// CreateRule bundles a predicate and its failure message into a Rule.
func CreateRule[T any](predicate func(T) bool, message string) Rule[T] {
	return Rule[T]{
		Check:   predicate,
		Message: message,
	}
}

// Validate reports whether value satisfies the rule.
func (r Rule[T]) Validate(value T) bool {
	return r.Check(value)
}

// Result is the outcome of checking one value against a sequence of rules.
type Result struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// Err returns nil for a valid result, otherwise ValidationErrors holding
// every failure message in rule order.
func (r Result) Err() error {
	if r.IsValid {
		return nil
	}

	errs := make(ValidationErrors, 0, len(r.Errors))
	for _, msg := range r.Errors {
		errs.Add(ValidationError{Message: msg})
	}
	return errs
}

// Validate evaluates every rule against value in order and collects the
// messages of the rules that fail. It never stops at the first failure.
func Validate[T any](value T, rules ...Rule[T]) Result {
	errors := make([]string, 0, len(rules))

	for _, rule := range rules {
		if !rule.Check(value) {
			errors = append(errors, rule.Message)
		}
	}

	return Result{
		IsValid: len(errors) == 0,
		Errors:  errors,
	}
}
