package validator

// FieldCheck binds a value and its rules to a field name for Apply.
type FieldCheck struct {
	Name string
	run  func() Result
}

// Result evaluates the bound rules.
func (f FieldCheck) Result() Result {
	if f.run == nil {
		return Validate[any](nil)
	}
	return f.run()
}

// Field prepares value to be validated under name.
func Field[T any](name string, value T, rules ...Rule[T]) FieldCheck {
	return FieldCheck{
		Name: name,
		run: func() Result {
			return Validate(value, rules...)
		},
	}
}

// Apply validates each field in order and returns ValidationErrors listing
// every failure, or nil when all fields pass.
func Apply(checks ...FieldCheck) error {
	var errors ValidationErrors

	for _, check := range checks {
		for _, msg := range check.Result().Errors {
			errors.Add(ValidationError{Field: check.Name, Message: msg})
		}
	}

	if errors.IsEmpty() {
		return nil
	}

	return errors
}
