package main

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/coregx/antirx"
)

func init() {
	cmd := &cobra.Command{
		Use:     "lint <pattern>...",
		Short:   "Validate a batch of patterns, reporting every parse failure",
		Long: `lint parses each pattern argument independently and reports every
failure together, rather than stopping at the first one — useful when
checking a whole file's worth of patterns in one pass.`,
		Example: `  antirx lint 'a(bc)*' '^anchored' 'fine|also[fine]'`,
		Args:    cobra.MinimumNArgs(1),
		RunE:    runLint,
	}
	rootCmd.AddCommand(cmd)
}

func runLint(cmd *cobra.Command, args []string) error {
	var result *multierror.Error
	good := 0
	for _, pattern := range args {
		if _, err := antirx.Parse(pattern); err != nil {
			result = multierror.Append(result, fmt.Errorf("%q: %w", pattern, err))
			continue
		}
		good++
	}
	logger.Debug("linted patterns", "total", len(args), "valid", good)
	if result != nil {
		total := len(args)
		result.ErrorFormat = func(errs []error) string {
			s := fmt.Sprintf("%d of %d pattern(s) invalid:\n", len(errs), total)
			for _, e := range errs {
				s += fmt.Sprintf("  * %s\n", e)
			}
			return s
		}
		return result
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d pattern(s) OK\n", good)
	return nil
}
