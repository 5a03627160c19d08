package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coregx/antirx"
)

func init() {
	cmd := &cobra.Command{
		Use:     "repr <pattern>",
		Short:   "Parse a pattern and print its canonical textual form",
		Example: `  antirx repr 'a(bc)*d{2,4}'`,
		Args:    cobra.ExactArgs(1),
		RunE:    runRepr,
	}
	rootCmd.AddCommand(cmd)
}

func runRepr(cmd *cobra.Command, args []string) error {
	r, err := antirx.Parse(args[0])
	if err != nil {
		return fmt.Errorf("parse %q: %w", args[0], err)
	}
	logger.Debug("parsed pattern", "pattern", args[0], "goStringForm", antirx.GoString(r))
	fmt.Fprintln(cmd.OutOrStdout(), antirx.Repr(r))
	return nil
}
