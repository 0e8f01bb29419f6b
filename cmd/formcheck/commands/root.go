// Package commands implements the CLI commands for formcheck.
package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thaipbs-mis/context-engineering-intro/pkg/config"
	"github.com/thaipbs-mis/context-engineering-intro/pkg/environment"
	"github.com/thaipbs-mis/context-engineering-intro/pkg/logger"
)

const version = "0.1.0"

// errValidationFailed signals that input was checked and rejected. The
// details have already been printed, so Execute does not repeat them.
var errValidationFailed = errors.New("validation failed")

// Config is read from the environment (and an optional .env file).
type Config struct {
	RulesFile string `env:"FORMCHECK_RULES" envDefault:"rules.yaml"`
	Env       string `env:"FORMCHECK_ENV" envDefault:"development"`
	LogLevel  string `env:"FORMCHECK_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"FORMCHECK_LOG_FORMAT" envDefault:"text"`
	NoColor   bool   `env:"FORMCHECK_NO_COLOR" envDefault:"false"`
}

// app holds state shared by the commands of one invocation.
type app struct {
	cfg Config
	log *slog.Logger

	rulesFile string
	logLevel  string
	logFormat string
	noColor   bool
}

// Execute runs the root command with os.Args.
func Execute() error {
	cmd := newRootCmd()
	err := cmd.Execute()
	if err != nil && !errors.Is(err, errValidationFailed) {
		fmt.Fprintln(cmd.ErrOrStderr(), color.RedString("Error:"), err)
	}
	return err
}

func newRootCmd() *cobra.Command {
	a := &app{log: logger.Discard()}

	cmd := &cobra.Command{
		Use:   "formcheck",
		Short: "Validate field values against a declarative rule set",
		Long: `formcheck validates form field values against rules declared in a
YAML file. Every rule of every field is evaluated, so a single run reports
all violations.

Configuration is read from FORMCHECK_* environment variables or a .env
file in the working directory; flags take precedence.`,
		Example: `  # Check values passed as arguments
  formcheck check --rules signup.yaml email=john@example.com age=21

  # Check a YAML or JSON document read from stdin
  echo '{"email": "john@example.com"}' | formcheck check --json

  # Show the rules of a rule set
  formcheck rules --rules signup.yaml`,
		Version:           version,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}
	cmd.SetVersionTemplate("formcheck version {{.Version}}\n")

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.rulesFile, "rules", "r", "", "rule set file (default from FORMCHECK_RULES or rules.yaml)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: text, json")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(
		newCheckCmd(a),
		newRulesCmd(a),
		newEmailCmd(a),
		newNotEmptyCmd(a),
	)
	return cmd
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := config.Load(&a.cfg); err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	if a.rulesFile != "" {
		a.cfg.RulesFile = a.rulesFile
	}
	if a.logLevel != "" {
		a.cfg.LogLevel = a.logLevel
	}
	if a.logFormat != "" {
		a.cfg.LogFormat = a.logFormat
	}
	if a.noColor || a.cfg.NoColor {
		color.NoColor = true
	}

	level, err := logger.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return err
	}
	format, err := logger.ParseFormat(a.cfg.LogFormat)
	if err != nil {
		return err
	}

	a.log = logger.New(
		logger.WithEnvironment(environment.Parse(a.cfg.Env), "formcheck"),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(cmd.ErrOrStderr()),
	)
	logger.SetAsDefault(a.log)
	return nil
}
