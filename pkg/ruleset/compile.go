package ruleset

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/thaipbs-mis/context-engineering-intro/pkg/validator"
)

// Rule names accepted in a rule set document.
const (
	RuleRequired  = "required"
	RuleNotEmpty  = "notEmpty"
	RuleEmail     = "email"
	RuleMinLength = "minLength"
	RuleMaxLength = "maxLength"
	RuleMin       = "min"
	RuleMax       = "max"
	RulePattern   = "pattern"
)

// RuleNames lists the supported rule names in catalog order.
func RuleNames() []string {
	return []string{
		RuleRequired, RuleNotEmpty, RuleEmail,
		RuleMinLength, RuleMaxLength,
		RuleMin, RuleMax,
		RulePattern,
	}
}

const messageKey = "message"

// compileNode turns one entry of a field's rule list into a rule. An entry is
// either a bare name ("email") or a mapping holding the name with its
// argument and an optional message override.
func compileNode(node *yaml.Node) (validator.Rule[string], error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return compile(node.Value, nil, "")
	case yaml.MappingNode:
	default:
		return validator.Rule[string]{}, fmt.Errorf("%w: line %d: rule must be a name or a mapping", ErrParsingRuleSet, node.Line)
	}

	var (
		name    string
		arg     *yaml.Node
		message string
	)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Value == messageKey {
			if err := value.Decode(&message); err != nil {
				return validator.Rule[string]{}, fmt.Errorf("%w: line %d: message must be a string", ErrParsingRuleSet, value.Line)
			}
			continue
		}
		if name != "" {
			return validator.Rule[string]{}, fmt.Errorf("%w: line %d: more than one rule in entry (%s, %s)", ErrParsingRuleSet, key.Line, name, key.Value)
		}
		name, arg = key.Value, value
	}
	if name == "" {
		return validator.Rule[string]{}, fmt.Errorf("%w: line %d: entry has no rule name", ErrParsingRuleSet, node.Line)
	}

	return compile(name, arg, message)
}

func compile(name string, arg *yaml.Node, message string) (validator.Rule[string], error) {
	var (
		rule validator.Rule[string]
		err  error
	)

	switch name {
	case RuleRequired, RuleNotEmpty, RuleEmail:
		if !missing(arg) {
			return rule, fmt.Errorf("%w: %s takes no argument", ErrInvalidArgument, name)
		}
	}

	switch name {
	case RuleRequired:
		rule = validator.Required[string]()
	case RuleNotEmpty:
		rule = validator.NotEmpty[string]()
	case RuleEmail:
		rule = validator.Email
	case RuleMinLength, RuleMaxLength:
		var n int
		if n, err = lengthArg(name, arg); err != nil {
			return rule, err
		}
		if name == RuleMinLength {
			rule = validator.MinLength[string](n)
		} else {
			rule = validator.MaxLength[string](n)
		}
	case RuleMin, RuleMax:
		var limit float64
		if limit, err = numberArg(name, arg); err != nil {
			return rule, err
		}
		if name == RuleMin {
			rule = numeric(validator.Min(limit))
		} else {
			rule = numeric(validator.Max(limit))
		}
	case RulePattern:
		if missing(arg) || arg.Kind != yaml.ScalarNode {
			return rule, fmt.Errorf("%w: %s expects a regular expression", ErrInvalidArgument, name)
		}
		expr := arg.Value
		re, cerr := regexp.Compile(expr)
		if cerr != nil {
			return rule, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, expr, cerr)
		}
		rule = validator.Pattern[string](re, fmt.Sprintf("Must match pattern %s", expr))
	default:
		return rule, fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}

	if message != "" {
		rule.Message = message
	}
	return rule, nil
}

func lengthArg(name string, arg *yaml.Node) (int, error) {
	var n int
	if missing(arg) || arg.Decode(&n) != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s expects a non-negative integer", ErrInvalidArgument, name)
	}
	return n, nil
}

func numberArg(name string, arg *yaml.Node) (float64, error) {
	var f float64
	if missing(arg) || arg.Decode(&f) != nil {
		return 0, fmt.Errorf("%w: %s expects a number", ErrInvalidArgument, name)
	}
	return f, nil
}

func missing(arg *yaml.Node) bool {
	return arg == nil || arg.Tag == "!!null"
}

// numeric adapts a float rule to raw string input. Values that do not parse
// as a number fail the rule.
func numeric(rule validator.Rule[float64]) validator.Rule[string] {
	return validator.CreateRule(func(value string) bool {
		n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return false
		}
		return rule.Check(n)
	}, rule.Message)
}
