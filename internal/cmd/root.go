package cmd

import (
	"fmt"
	"os"

	"github.com/akave-ai/msgdecode/internal/config"
	"github.com/akave-ai/msgdecode/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// options holds flag values and the state built from them before a subcommand runs.
type options struct {
	output    string
	level     string
	noColor   bool
	logLevel  string
	logFormat string
	failFast  bool

	cfg *config.Config
	log zerolog.Logger
}

// NewRootCommand builds the msgdecode command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "msgdecode",
		Short: "msgdecode - structured log message decoder",
		Long: `msgdecode reads structured JSON log messages (time, level, id, text,
duration, location, errors and positional details) and decodes them into
typed records, reporting precisely which field of which record is malformed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.output, "output", "o", "text", "output format: text, json, summary, log")
	flags.StringVarP(&opts.level, "level", "l", "", "filter by message level (comma-separated: info,warn,error)")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored text output")
	flags.StringVar(&opts.logLevel, "log-level", "info", "diagnostic log level: trace, debug, info, warn, error, disabled")
	flags.StringVar(&opts.logFormat, "log-format", "console", "diagnostic log format: console, json")

	rootCmd.AddCommand(newDecodeCmd(opts), newInputsCmd())
	return rootCmd
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// load reads env/.env configuration, applies explicitly set flags on top and
// builds the diagnostic logger on stderr.
func (o *options) load(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output.Format = o.output
	}
	if flags.Changed("level") {
		cfg.Output.Levels = o.level
	}
	if flags.Changed("no-color") {
		cfg.Output.Color = !o.noColor
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = o.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = o.logFormat
	}
	if flags.Changed("fail-fast") {
		cfg.Decode.FailFast = o.failFast
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return err
	}

	o.cfg = cfg
	o.log = logger.New(cfg.Logging, cmd.ErrOrStderr())
	return nil
}
