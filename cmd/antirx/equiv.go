package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coregx/antirx"
)

func init() {
	cmd := &cobra.Command{
		Use:     "equiv <pattern1> <pattern2>",
		Short:   "Report whether two patterns denote the same language",
		Example: `  antirx equiv 'a*' '(aa)*|(aa)*a'`,
		Args:    cobra.ExactArgs(2),
		RunE:    runEquiv,
	}
	rootCmd.AddCommand(cmd)
}

func runEquiv(cmd *cobra.Command, args []string) error {
	lhs, err := antirx.Parse(args[0])
	if err != nil {
		return fmt.Errorf("parse %q: %w", args[0], err)
	}
	rhs, err := antirx.Parse(args[1])
	if err != nil {
		return fmt.Errorf("parse %q: %w", args[1], err)
	}
	ok, err := antirx.EquivBounded(lhs, rhs, engineConfig())
	if err != nil {
		return err
	}
	logger.Debug("compared patterns for equivalence", "lhs", args[0], "rhs", args[1], "equiv", ok)
	fmt.Fprintln(cmd.OutOrStdout(), ok)
	if !ok {
		cmd.SilenceErrors = true
		return errNoMatch
	}
	return nil
}
