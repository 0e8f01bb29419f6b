package ruleset_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thaipbs-mis/context-engineering-intro/pkg/ruleset"
	"github.com/thaipbs-mis/context-engineering-intro/pkg/validator"
)

const signupRules = `
fields:
  email:
    - required
    - email
  username:
    - required
    - minLength: 3
    - maxLength: 16
    - pattern: '^[a-z0-9_]+$'
      message: Only lowercase letters, digits and underscores
  age:
    - min: 18
    - max: 130
  bio:
`

func TestParse(t *testing.T) {
	t.Run("keeps document field order", func(t *testing.T) {
		set, err := ruleset.Parse([]byte(signupRules))
		require.NoError(t, err)

		assert.Equal(t, []string{"email", "username", "age", "bio"}, set.Fields())
		assert.Len(t, set.Rules("username"), 4)
		assert.Empty(t, set.Rules("bio"))
		assert.True(t, set.Has("bio"))
		assert.False(t, set.Has("password"))
		assert.Nil(t, set.Rules("password"))
	})

	t.Run("uses catalog messages", func(t *testing.T) {
		set, err := ruleset.Parse([]byte(signupRules))
		require.NoError(t, err)

		var messages []string
		for _, rule := range set.Rules("username") {
			messages = append(messages, rule.Message)
		}
		assert.Equal(t, []string{
			"This field is required",
			"Must be at least 3 characters long",
			"Must be no more than 16 characters long",
			"Only lowercase letters, digits and underscores",
		}, messages)
	})

	t.Run("message overrides default", func(t *testing.T) {
		set, err := ruleset.Parse([]byte(`
fields:
  email:
    - required:
      message: Email is mandatory
`))
		require.NoError(t, err)
		require.Len(t, set.Rules("email"), 1)
		assert.Equal(t, "Email is mandatory", set.Rules("email")[0].Message)
	})

	t.Run("pattern without message gets a default", func(t *testing.T) {
		set, err := ruleset.Parse([]byte("fields:\n  code:\n    - pattern: '^\\d+$'\n"))
		require.NoError(t, err)
		assert.Equal(t, `Must match pattern ^\d+$`, set.Rules("code")[0].Message)
	})

	errorCases := []struct {
		name   string
		doc    string
		target error
	}{
		{"invalid yaml", "fields: [", ruleset.ErrParsingRuleSet},
		{"missing fields", "other: 1\n", ruleset.ErrParsingRuleSet},
		{"fields not a mapping", "fields:\n  - email\n", ruleset.ErrParsingRuleSet},
		{"rules not a list", "fields:\n  email: required\n", ruleset.ErrParsingRuleSet},
		{"duplicate field", "fields:\n  a: []\n  a: []\n", ruleset.ErrParsingRuleSet},
		{"two rules in one entry", "fields:\n  a:\n    - minLength: 1\n      maxLength: 2\n", ruleset.ErrParsingRuleSet},
		{"message only", "fields:\n  a:\n    - message: hi\n", ruleset.ErrParsingRuleSet},
		{"unknown rule", "fields:\n  a:\n    - uuid\n", ruleset.ErrUnknownRule},
		{"argument to required", "fields:\n  a:\n    - required: 5\n", ruleset.ErrInvalidArgument},
		{"argument to email", "fields:\n  a:\n    - email: strict\n", ruleset.ErrInvalidArgument},
		{"argument to notEmpty", "fields:\n  a:\n    - notEmpty: true\n", ruleset.ErrInvalidArgument},
		{"length without argument", "fields:\n  a:\n    - minLength\n", ruleset.ErrInvalidArgument},
		{"negative length", "fields:\n  a:\n    - maxLength: -1\n", ruleset.ErrInvalidArgument},
		{"non-numeric bound", "fields:\n  a:\n    - min: lots\n", ruleset.ErrInvalidArgument},
		{"null bound", "fields:\n  a:\n    - max:\n", ruleset.ErrInvalidArgument},
		{"pattern without expression", "fields:\n  a:\n    - pattern\n", ruleset.ErrInvalidArgument},
		{"bad pattern", "fields:\n  a:\n    - pattern: '(['\n", ruleset.ErrInvalidPattern},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			set, err := ruleset.Parse([]byte(tc.doc))
			require.Error(t, err)
			assert.Nil(t, set)
			assert.True(t, errors.Is(err, tc.target), "got %v", err)
		})
	}
}

func TestSet_Check(t *testing.T) {
	set, err := ruleset.Parse([]byte(signupRules))
	require.NoError(t, err)

	t.Run("valid input", func(t *testing.T) {
		report := set.Check(map[string]string{
			"email":    "user@example.com",
			"username": "john_doe",
			"age":      "30",
		})

		assert.True(t, report.Valid())
		assert.NoError(t, report.Err())
		assert.Empty(t, report.Failed())
		require.Len(t, report.Fields, 4)
		assert.Equal(t, "email", report.Fields[0].Field)
	})

	t.Run("reports every failing rule per field", func(t *testing.T) {
		report := set.Check(map[string]string{
			"email":    "",
			"username": "Jo",
			"age":      "seventeen",
			"unknown":  "ignored",
		})

		assert.False(t, report.Valid())

		failed := report.Failed()
		require.Len(t, failed, 3)
		assert.Equal(t, []string{
			"This field is required",
			"Please enter a valid email address",
		}, failed[0].Errors)
		assert.Equal(t, []string{
			"Must be at least 3 characters long",
			"Only lowercase letters, digits and underscores",
		}, failed[1].Errors)
		assert.Equal(t, []string{"Must be at least 18", "Must be no more than 130"}, failed[2].Errors)

		verrs := validator.ExtractValidationErrors(report.Err())
		require.NotNil(t, verrs)
		assert.Equal(t, []string{"email", "username", "age"}, verrs.Fields())
	})

	t.Run("numeric bounds", func(t *testing.T) {
		assert.True(t, set.Validate("age", " 18 ").IsValid)
		assert.True(t, set.Validate("age", "130").IsValid)
		assert.False(t, set.Validate("age", "130.5").IsValid)
		assert.False(t, set.Validate("age", "17.99").IsValid)
	})

	t.Run("unknown field is valid", func(t *testing.T) {
		assert.True(t, set.Validate("nope", "").IsValid)
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("loads rule set from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rules.yaml")
		require.NoError(t, os.WriteFile(path, []byte(signupRules), 0o600))

		set, err := ruleset.LoadFile(path)
		require.NoError(t, err)
		assert.Len(t, set.Fields(), 4)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ruleset.LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("invalid content keeps the sentinel", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rules.yaml")
		require.NoError(t, os.WriteFile(path, []byte("fields:\n  a:\n    - bogus\n"), 0o600))

		_, err := ruleset.LoadFile(path)
		assert.ErrorIs(t, err, ruleset.ErrUnknownRule)
	})
}

func TestRuleNames(t *testing.T) {
	names := ruleset.RuleNames()
	assert.Contains(t, names, ruleset.RuleRequired)
	assert.Contains(t, names, ruleset.RulePattern)
	for _, name := range names {
		if name == ruleset.RuleMinLength || name == ruleset.RuleMaxLength || name == ruleset.RuleMin || name == ruleset.RuleMax || name == ruleset.RulePattern {
			continue
		}
		_, err := ruleset.Parse([]byte("fields:\n  a:\n    - " + name + "\n"))
		assert.NoError(t, err, name)
	}
}
