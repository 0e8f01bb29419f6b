package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thaipbs-mis/context-engineering-intro/pkg/logger"
	"github.com/thaipbs-mis/context-engineering-intro/pkg/ruleset"
)

// checkOutput is the JSON form of a check run.
type checkOutput struct {
	Valid  bool                  `json:"valid"`
	Fields []ruleset.FieldResult `json:"fields"`
}

func newCheckCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "check [field=value ...]",
		Short: "Validate field values against the rule set",
		Long: `Validate field values against the rule set.

Values are given as field=value arguments. Without arguments a YAML or JSON
mapping of field names to values is read from stdin. Fields declared in the
rule set but missing from the input are checked as empty strings.

Exit codes:
  0 - All fields are valid
  1 - At least one field failed, or the input could not be read`,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := a.loadRuleSet()
			if err != nil {
				return err
			}

			var values map[string]string
			if len(args) > 0 {
				values, err = parseAssignments(args)
			} else {
				values, err = decodeValues(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}

			for field := range values {
				if !set.Has(field) {
					a.log.Warn("input field has no rules", logger.Field(field))
				}
			}

			report := set.Check(values)
			for _, f := range report.Fields {
				a.log.Debug("field checked", logger.Field(f.Field), logger.Result(f.Result))
			}

			out := cmd.OutOrStdout()
			if asJSON {
				if err := writeJSON(out, checkOutput{Valid: report.Valid(), Fields: report.Fields}); err != nil {
					return err
				}
			} else {
				printReport(out, report)
			}

			if !report.Valid() {
				return errValidationFailed
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output results as JSON")
	return cmd
}

func (a *app) loadRuleSet() (*ruleset.Set, error) {
	set, err := ruleset.LoadFile(a.cfg.RulesFile)
	if err != nil {
		a.log.Error("rule set not loaded", logger.Path(a.cfg.RulesFile), logger.Error(err))
		return nil, err
	}
	a.log.Debug("rule set loaded", logger.Path(a.cfg.RulesFile), slog.Int("fields", len(set.Fields())))
	return set, nil
}

// parseAssignments splits field=value arguments. The value may contain '='
// and may be empty.
func parseAssignments(args []string) (map[string]string, error) {
	values := make(map[string]string, len(args))
	for _, arg := range args {
		field, value, ok := strings.Cut(arg, "=")
		if !ok || field == "" {
			return nil, fmt.Errorf("invalid argument %q: expected field=value", arg)
		}
		values[field] = value
	}
	return values, nil
}

// decodeValues reads a YAML (or JSON) mapping of scalar values. Scalars are
// taken verbatim as written, so 01234 stays "01234". Null values become
// empty strings.
func decodeValues(r io.Reader) (map[string]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode input: %w", err)
	}

	values := make(map[string]string, len(raw))
	for field, node := range raw {
		if node.Kind == yaml.AliasNode && node.Alias != nil {
			node = *node.Alias
		}
		if node.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("decode input: field %q must be a scalar value", field)
		}
		if node.Tag == "!!null" {
			values[field] = ""
			continue
		}
		values[field] = node.Value
	}
	return values, nil
}

func printReport(w io.Writer, report ruleset.Report) {
	ok := color.New(color.FgGreen)
	fail := color.New(color.FgRed, color.Bold)

	for _, f := range report.Fields {
		if f.IsValid {
			ok.Fprintf(w, "✓ %s\n", f.Field)
			continue
		}
		fail.Fprintf(w, "✗ %s\n", f.Field)
		for _, msg := range f.Errors {
			fmt.Fprintf(w, "    - %s\n", msg)
		}
	}

	fmt.Fprintln(w)
	failed := len(report.Failed())
	if failed == 0 {
		fmt.Fprintln(w, color.GreenString("All %d field(s) valid", len(report.Fields)))
		return
	}
	fmt.Fprintln(w, color.RedString("%d of %d field(s) failed", failed, len(report.Fields)))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
