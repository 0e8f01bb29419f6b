package ruleset

import "github.com/thaipbs-mis/context-engineering-intro/pkg/validator"

// FieldResult is the validation outcome of a single field.
type FieldResult struct {
	Field string `json:"field"`
	validator.Result
}

// Report collects per-field results of Set.Check.
type Report struct {
	Fields []FieldResult `json:"fields"`
}

func (r Report) Valid() bool {
	for _, f := range r.Fields {
		if !f.IsValid {
			return false
		}
	}
	return true
}

// Failed returns only the fields that did not pass.
func (r Report) Failed() []FieldResult {
	var failed []FieldResult
	for _, f := range r.Fields {
		if !f.IsValid {
			failed = append(failed, f)
		}
	}
	return failed
}

// Err returns nil when every field passed, otherwise validator.ValidationErrors
// keyed by field name.
func (r Report) Err() error {
	var errs validator.ValidationErrors
	for _, f := range r.Fields {
		for _, msg := range f.Errors {
			errs.Add(validator.ValidationError{Field: f.Field, Message: msg})
		}
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}
