package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thaipbs-mis/context-engineering-intro/pkg/logger"
	"github.com/thaipbs-mis/context-engineering-intro/pkg/validator"
)

func newEmailCmd(a *app) *cobra.Command {
	return newPredicateCmd(a, "email <value>", "Check that a value looks like an email address", validator.Email)
}

func newNotEmptyCmd(a *app) *cobra.Command {
	return newPredicateCmd(a, "notempty <value>", "Check that a value is not blank", validator.NotEmpty[string]())
}

// newPredicateCmd exposes a single catalog rule without a rule set file.
func newPredicateCmd(a *app, use, short string, rule validator.Rule[string]) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := validator.Validate(args[0], rule)
			a.log.Debug("value checked", logger.Component(cmd.Name()), logger.Result(result))

			out := cmd.OutOrStdout()
			if result.IsValid {
				fmt.Fprintln(out, color.GreenString("✓ valid"))
				return nil
			}
			for _, msg := range result.Errors {
				fmt.Fprintln(out, color.RedString("✗ %s", msg))
			}
			return errValidationFailed
		},
	}
}
