package ruleset

import "errors"

var (
	// ErrParsingRuleSet is returned when the document is not valid YAML or
	// does not have the expected shape.
	ErrParsingRuleSet = errors.New("failed to parse rule set")

	// ErrUnknownRule is returned for a rule name outside the catalog.
	ErrUnknownRule = errors.New("unknown rule")

	// ErrInvalidArgument is returned when a rule argument is missing or has the wrong type.
	ErrInvalidArgument = errors.New("invalid rule argument")

	// ErrInvalidPattern is returned when a pattern rule does not compile.
	ErrInvalidPattern = errors.New("invalid pattern")
)
