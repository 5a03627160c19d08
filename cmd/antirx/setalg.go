package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coregx/antirx"
)

// setAlgCommand builds the intersect/difference/xor subcommands, which
// all share the same shape: parse two patterns, combine them under the
// --max-env-pairs resource guard with op, and print the result's
// textual form.
func setAlgCommand(name, short string, op func(r1, r2 antirx.Rx, cfg antirx.EngineConfig) (antirx.Rx, error)) *cobra.Command {
	return &cobra.Command{
		Use:     name + " <pattern1> <pattern2>",
		Short:   short,
		Example: fmt.Sprintf("  antirx %s 'a[a-z]*' 'a[a-m]*'", name),
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lhs, err := antirx.Parse(args[0])
			if err != nil {
				return fmt.Errorf("parse %q: %w", args[0], err)
			}
			rhs, err := antirx.Parse(args[1])
			if err != nil {
				return fmt.Errorf("parse %q: %w", args[1], err)
			}
			out, err := op(lhs, rhs, engineConfig())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), antirx.Repr(out))
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(setAlgCommand(
		"intersect",
		"Compute the intersection of two patterns' languages",
		antirx.IntersectBounded,
	))
	rootCmd.AddCommand(setAlgCommand(
		"difference",
		"Compute the set difference pattern1 − pattern2",
		antirx.DifferenceBounded,
	))
	rootCmd.AddCommand(setAlgCommand(
		"xor",
		"Compute the symmetric difference of two patterns' languages",
		antirx.XorBounded,
	))
}
