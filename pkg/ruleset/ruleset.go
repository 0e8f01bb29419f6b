package ruleset

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/thaipbs-mis/context-engineering-intro/pkg/validator"
)

// Set is a compiled rule set: an ordered list of fields, each with its rules.
// A Set is read-only after Parse and safe for concurrent use.
type Set struct {
	fields []string
	rules  map[string][]validator.Rule[string]
}

type document struct {
	Fields yaml.Node `yaml:"fields"`
}

// LoadFile reads and compiles the rule set stored at path.
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rule set %s: %w", path, err)
	}

	set, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// Parse compiles a YAML rule set document. Field order follows the document.
func Parse(data []byte) (*Set, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrParsingRuleSet, err)
	}

	fields := &doc.Fields
	if fields.Kind == 0 {
		return nil, fmt.Errorf("%w: missing fields section", ErrParsingRuleSet)
	}
	if fields.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: fields must be a mapping", ErrParsingRuleSet, fields.Line)
	}

	set := &Set{
		fields: make([]string, 0, len(fields.Content)/2),
		rules:  make(map[string][]validator.Rule[string], len(fields.Content)/2),
	}

	for i := 0; i+1 < len(fields.Content); i += 2 {
		key, list := fields.Content[i], fields.Content[i+1]
		name := key.Value

		if _, dup := set.rules[name]; dup {
			return nil, fmt.Errorf("%w: line %d: duplicate field %q", ErrParsingRuleSet, key.Line, name)
		}

		var rules []validator.Rule[string]
		switch list.Kind {
		case yaml.SequenceNode:
			rules = make([]validator.Rule[string], 0, len(list.Content))
			for _, item := range list.Content {
				rule, err := compileNode(item)
				if err != nil {
					return nil, fmt.Errorf("field %q: %w", name, err)
				}
				rules = append(rules, rule)
			}
		case yaml.ScalarNode:
			if list.Tag != "!!null" {
				return nil, fmt.Errorf("%w: line %d: rules of field %q must be a list", ErrParsingRuleSet, list.Line, name)
			}
		default:
			return nil, fmt.Errorf("%w: line %d: rules of field %q must be a list", ErrParsingRuleSet, list.Line, name)
		}

		set.fields = append(set.fields, name)
		set.rules[name] = rules
	}

	return set, nil
}

// Fields returns the field names in document order.
func (s *Set) Fields() []string {
	out := make([]string, len(s.fields))
	copy(out, s.fields)
	return out
}

func (s *Set) Has(field string) bool {
	_, ok := s.rules[field]
	return ok
}

// Rules returns the compiled rules of field, or nil for an unknown field.
func (s *Set) Rules(field string) []validator.Rule[string] {
	return s.rules[field]
}

// Validate checks one value against the rules of field. Unknown fields have
// no rules and are therefore valid.
func (s *Set) Validate(field, value string) validator.Result {
	return validator.Validate(value, s.rules[field]...)
}

// Check validates values against every field of the set, in document order.
// A field absent from values is checked as the empty string. Values for
// fields the set does not define are ignored.
func (s *Set) Check(values map[string]string) Report {
	report := Report{Fields: make([]FieldResult, 0, len(s.fields))}
	for _, field := range s.fields {
		report.Fields = append(report.Fields, FieldResult{
			Field:  field,
			Result: s.Validate(field, values[field]),
		})
	}
	return report
}
