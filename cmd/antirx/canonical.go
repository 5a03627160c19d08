package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coregx/antirx"
)

func init() {
	cmd := &cobra.Command{
		Use:     "canonical <pattern>",
		Short:   "Print a pattern's canonical form",
		Long: `canonical computes a representative term for a pattern's language:
any two patterns that accept the same strings print the identical
canonical form, which makes diffing two patterns for equivalence by
eye possible.`,
		Example: `  antirx canonical 'a*'`,
		Args:    cobra.ExactArgs(1),
		RunE:    runCanonical,
	}
	rootCmd.AddCommand(cmd)
}

func runCanonical(cmd *cobra.Command, args []string) error {
	r, err := antirx.Parse(args[0])
	if err != nil {
		return fmt.Errorf("parse %q: %w", args[0], err)
	}
	out, err := antirx.CanonicalBounded(r, engineConfig())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), antirx.Repr(out))
	return nil
}
