package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coregx/antirx"
)

func init() {
	cmd := &cobra.Command{
		Use:     "accepts <pattern> <string>",
		Short:   "Report whether a pattern's language contains a string",
		Example: `  antirx accepts 'a(bc)*' abcbc`,
		Args:    cobra.ExactArgs(2),
		RunE:    runAccepts,
	}
	rootCmd.AddCommand(cmd)
}

func runAccepts(cmd *cobra.Command, args []string) error {
	r, err := antirx.Parse(args[0])
	if err != nil {
		return fmt.Errorf("parse %q: %w", args[0], err)
	}
	ok := antirx.Accepts(r, args[1])
	fmt.Fprintln(cmd.OutOrStdout(), ok)
	if !ok {
		cmd.SilenceErrors = true
		return errNoMatch
	}
	return nil
}

var errNoMatch = &exitStatusError{}

// exitStatusError carries a nonzero exit status without printing a
// message of its own: `accepts` exiting 1 on a non-match is the
// informative signal, not an error to report.
type exitStatusError struct{}

func (e *exitStatusError) Error() string { return "" }
