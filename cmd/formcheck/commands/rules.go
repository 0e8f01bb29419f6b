package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newRulesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the fields of the rule set and their messages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, err := a.loadRuleSet()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Rule set: %s\n\n", a.cfg.RulesFile)
			for _, field := range set.Fields() {
				rules := set.Rules(field)
				fmt.Fprintf(out, "%s (%d)\n", color.CyanString(field), len(rules))
				for _, rule := range rules {
					fmt.Fprintf(out, "    - %s\n", rule.Message)
				}
			}
			return nil
		},
	}
}
