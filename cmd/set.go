package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vipcxj/numeral/internal/interval"
)

func newSetCmd(opts *options) *cobra.Command {
	var contains literalFlag
	cmd := &cobra.Command{
		Use:   "set SET...",
		Short: "Normalize unions of intervals",
		Long: `Each argument is one or more intervals separated by ';'. The set is
printed with empty intervals dropped and overlapping or touching
intervals merged, sorted by lower bound.

With --contains, print true or false for each set instead and exit with
status 1 when any of them does not contain the value.`,
		Example: `  numeral set "[2 .. 3] ; [0 .. 2.5)"
  numeral set --contains 8080 "[1 .. 1024) ; [8000 .. 9000]"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ranges := make([]interval.Range, 0, len(args))
			for _, arg := range args {
				s, err := interval.ParseSet(arg)
				if err != nil {
					return err
				}
				if !contains.set {
					fmt.Fprintln(cmd.OutOrStdout(), interval.FormatSet(s))
					continue
				}
				ranges = append(ranges, s)
			}
			if !contains.set {
				return nil
			}
			return reportContains(cmd.OutOrStdout(), ranges, contains)
		},
	}

	cmd.Flags().Var(&contains, "contains", "print whether each set contains this value")
	return cmd
}
