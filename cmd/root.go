package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vipcxj/numeral/internal/config"
	"github.com/vipcxj/numeral/internal/logging"
)

// options is shared by every subcommand of one root command.
type options struct {
	configPath    string
	configSection string
	logLevel      string

	settings *config.Settings
	logger   *slog.Logger
}

// exitError ends the command with code and no message. It reports an
// answer, like a value outside an interval, rather than a failure.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// NewRootCmd builds a fresh numeral command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "numeral",
		Short: "Parse, check and canonicalize numeric literals and intervals",
		Long: `numeral reads numeric literals such as 0x1A, -3.50, 1e10 or inf and
intervals such as [1 .. 2) and prints them in canonical form.

Values starting with '-' must follow "--" so they are not taken for flags:

  numeral number -- -3.50
  numeral interval -- "-1 .. 2"`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "YAML settings file")
	pf.StringVar(&opts.configSection, "config-path", "", "colon separated section of the settings file, e.g. tools:numeral")
	pf.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error (default: settings, then warn)")

	root.AddCommand(
		newNumberCmd(opts),
		newIntervalCmd(opts),
		newSetCmd(opts),
		newNormalizeCmd(opts),
		newExportCmd(opts),
	)
	return root
}

// setup builds the logger and loads settings. The --log-level flag wins
// over the settings file; until the file is read the flag alone applies.
// The logger is handed to every package that logs; the slog default is
// left alone.
func (o *options) setup(cmd *cobra.Command) error {
	if o.logLevel != "" {
		if _, err := logging.ParseLevel(o.logLevel); err != nil {
			return err
		}
	}
	o.logger = logging.NewLogger(logging.LoggerConfig{Level: o.logLevel}, cmd.ErrOrStderr())

	settings, err := config.Load(o.logger, o.configPath, o.configSection)
	if err != nil {
		return err
	}
	o.settings = settings

	if o.logLevel == "" {
		o.logger = logging.NewLogger(logging.LoggerConfig{Level: settings.LogLevel}, cmd.ErrOrStderr())
	}
	return nil
}

// Execute runs the command line in os.Args and returns the exit code.
func Execute() int {
	root := NewRootCmd()
	root.SetArgs(os.Args[1:])
	if err := root.ExecuteContext(context.Background()); err != nil {
		var exit *exitError
		if errors.As(err, &exit) {
			return exit.code
		}
		root.PrintErrln("Error:", err.Error())
		return 1
	}
	return 0
}
