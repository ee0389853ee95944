package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vipcxj/numeral/internal/interval"
)

func newIntervalCmd(opts *options) *cobra.Command {
	var contains literalFlag
	cmd := &cobra.Command{
		Use:   "interval INTERVAL...",
		Short: "Print intervals in canonical form or test membership",
		Long: `Print each interval as [lower .. upper] with canonical bounds.

With --contains, print true or false for each interval instead and exit
with status 1 when any of them does not contain the value.`,
		Example: `  numeral interval "1..2" "(0x0 .. 1.50]"
  numeral interval --contains 0.5 "[0 .. 1)"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ranges := make([]interval.Range, 0, len(args))
			for _, arg := range args {
				iv, err := interval.Parse(arg)
				if err != nil {
					return err
				}
				if !contains.set {
					fmt.Fprintln(cmd.OutOrStdout(), interval.Format(iv))
					continue
				}
				ranges = append(ranges, iv)
			}
			if !contains.set {
				return nil
			}
			return reportContains(cmd.OutOrStdout(), ranges, contains)
		},
	}

	cmd.Flags().Var(&contains, "contains", "print whether each interval contains this value")
	return cmd
}

// reportContains prints true or false per range and fails with exit
// status 1 when any answer is false.
func reportContains(out io.Writer, ranges []interval.Range, value literalFlag) error {
	all := true
	for _, r := range ranges {
		ok := r.Contains(value.value)
		all = all && ok
		fmt.Fprintln(out, ok)
	}
	if !all {
		return &exitError{code: 1}
	}
	return nil
}
