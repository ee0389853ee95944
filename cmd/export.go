package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vipcxj/numeral/internal/interval"
	"github.com/vipcxj/numeral/internal/literal"
	"github.com/vipcxj/numeral/internal/shell"
)

func newExportCmd(opts *options) *cobra.Command {
	var (
		shellType  shellFlag
		persistent bool
		prefix     string
		base       bool
	)
	cmd := &cobra.Command{
		Use:   "export NAME=VALUE...",
		Short: "Print shell assignments for canonical numbers and intervals",
		Long: `Check each VALUE as a numeric literal or an interval and print a shell
assignment of its canonical form to an environment variable named after
NAME: upper case, dashes turned into underscores, --prefix prepended.

When the settings file lists a range for NAME, numeric values outside it
are rejected.

--shell picks the syntax (sh, powershell or cmd); auto looks at the
parent processes. --export makes the assignment persistent: export for
sh, the user environment for powershell and setx for cmd.`,
		Example: `  eval "$(numeral export port=0x1F90 window='1..2')"
  numeral export --shell powershell --export --prefix APP_ limit=1e3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := opts.settings
			if !cmd.Flags().Changed("shell") {
				shellType.value = settings.ShellType()
			}
			if !cmd.Flags().Changed("export") {
				persistent = settings.Export
			}
			if !cmd.Flags().Changed("prefix") {
				prefix = settings.EnvPrefix
			}
			preserve := settings.PreserveBase
			if cmd.Flags().Changed("base") {
				preserve = base
			}

			vars := make([]shell.Var, 0, len(args))
			for _, arg := range args {
				name, value, ok := strings.Cut(arg, "=")
				name = strings.TrimSpace(name)
				if !ok || name == "" {
					return fmt.Errorf("argument %q: want NAME=VALUE", arg)
				}
				canonical, err := canonicalValue(value, preserve)
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				if err := checkRange(opts, name, value); err != nil {
					return err
				}
				vars = append(vars, shell.Var{Name: shell.EnvName(name, prefix), Value: canonical})
			}

			st, err := shell.Resolve(cmd.Context(), opts.logger, shellType.value)
			if err != nil {
				return err
			}
			script, err := shell.Script(st, vars, persistent)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), script)
			return nil
		},
	}

	shellType.value = shell.ShellTypeAuto
	cmd.Flags().Var(&shellType, "shell", "assignment syntax: auto, sh, powershell or cmd")
	cmd.Flags().BoolVarP(&persistent, "export", "e", false, "make the assignment persistent")
	cmd.Flags().StringVar(&prefix, "prefix", "", "prefix for variable names")
	cmd.Flags().BoolVarP(&base, "base", "b", false, "keep the base of hex, binary and octal integers")
	return cmd
}

// canonicalValue formats value as a literal, or as an interval when it
// contains the ".." separator.
func canonicalValue(value string, preserveBase bool) (string, error) {
	if strings.Contains(value, "..") {
		iv, err := interval.Parse(value)
		if err != nil {
			return "", err
		}
		return interval.Format(iv), nil
	}
	v, err := literal.Parse(value)
	if err != nil {
		return "", err
	}
	if preserveBase {
		return literal.FormatBase(v), nil
	}
	return literal.Format(v), nil
}

// checkRange applies the settings range registered for name, if any.
// Intervals are not checked.
func checkRange(opts *options, name, value string) error {
	r, ok := opts.settings.Range(name)
	if !ok || strings.Contains(value, "..") {
		return nil
	}
	v, err := literal.Parse(value)
	if err != nil {
		return err
	}
	if !r.Contains(v) {
		return fmt.Errorf("%s: %s is outside %s", name, literal.Format(v), interval.FormatSet(r))
	}
	return nil
}
