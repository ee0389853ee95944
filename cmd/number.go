package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vipcxj/numeral/internal/literal"
)

func newNumberCmd(opts *options) *cobra.Command {
	var base, verbose bool
	cmd := &cobra.Command{
		Use:   "number LITERAL...",
		Short: "Print numeric literals in canonical form",
		Long: `Print each numeric literal in canonical form, one per line.

Integers print as decimal digits unless --base (or preserve_base in the
settings) keeps hex, binary and octal. With --verbose each line is
grammar, kind, base and canonical form separated by tabs.`,
		Example: `  numeral number 0x1A 3.50 1e10 -- -inf
  numeral number --base 0XFF`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			preserve := opts.settings.PreserveBase
			if cmd.Flags().Changed("base") {
				preserve = base
			}
			out := cmd.OutOrStdout()
			for _, arg := range args {
				v, g, err := literal.ParseWithGrammar(arg)
				if err != nil {
					return err
				}
				text := literal.Format(v)
				if preserve {
					text = literal.FormatBase(v)
				}
				if verbose {
					fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", g, v.Kind(), v.Base(), text)
				} else {
					fmt.Fprintln(out, text)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&base, "base", "b", false, "keep the base of hex, binary and octal integers")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "also print grammar, kind and base")
	return cmd
}
