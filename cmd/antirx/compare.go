package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coregx/antirx"
)

func init() {
	cmd := &cobra.Command{
		Use:     "compare <pattern1> <pattern2>",
		Short:   "Decide the subset/superset/equivalence relation between two patterns",
		Long: `compare prints one of:

  <             pattern1's language is a proper subset of pattern2's
  =             the two patterns are equivalent
  >             pattern1's language is a proper superset of pattern2's
  incomparable  neither contains the other`,
		Example: `  antirx compare 'a*' 'a|b*'`,
		Args:    cobra.ExactArgs(2),
		RunE:    runCompare,
	}
	rootCmd.AddCommand(cmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	lhs, err := antirx.Parse(args[0])
	if err != nil {
		return fmt.Errorf("parse %q: %w", args[0], err)
	}
	rhs, err := antirx.Parse(args[1])
	if err != nil {
		return fmt.Errorf("parse %q: %w", args[1], err)
	}
	o, err := antirx.PartialCompareBounded(lhs, rhs, engineConfig())
	if err != nil {
		return err
	}
	logger.Debug("compared patterns", "lhs", args[0], "rhs", args[1], "ordering", o.String())
	fmt.Fprintln(cmd.OutOrStdout(), o)
	return nil
}
