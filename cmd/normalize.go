package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vipcxj/numeral/internal/normalize"
)

func newNormalizeCmd(opts *options) *cobra.Command {
	var write, base bool
	cmd := &cobra.Command{
		Use:   "normalize FILE",
		Short: "Rewrite numbers and intervals in a YAML file to canonical form",
		Long: `Rewrite the plain numbers of a YAML document, and the string values
that hold intervals, into canonical form. Keys, comments and everything
else are kept. The result goes to stdout unless --write replaces FILE.
FILE "-" reads stdin.`,
		Example: `  numeral normalize limits.yaml
  numeral normalize -w --base limits.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if write && path == "-" {
				return fmt.Errorf("--write needs a file, not stdin")
			}

			var data []byte
			var err error
			if path == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(path)
			}
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			preserve := opts.settings.PreserveBase
			if cmd.Flags().Changed("base") {
				preserve = base
			}
			out, changes, err := normalize.Bytes(cmd.Context(), data, normalize.Options{PreserveBase: preserve, Logger: opts.logger})
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			opts.logger.InfoContext(cmd.Context(), "normalized", slog.String("file", path), slog.Int("changes", len(changes)))

			if !write {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			if len(changes) == 0 {
				return nil
			}
			info, err := os.Stat(path)
			if err != nil {
				return err
			}
			return os.WriteFile(path, out, info.Mode().Perm())
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to FILE")
	cmd.Flags().BoolVarP(&base, "base", "b", false, "keep the base of hex, binary and octal integers")
	return cmd
}
