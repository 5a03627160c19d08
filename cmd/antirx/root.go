package main

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/coregx/antirx"
	"github.com/coregx/antirx/internal/logging"
)

var rootFlags = struct {
	verbose     *bool
	maxEnvPairs *int
}{}

var logger hclog.Logger

// engineConfig builds the EngineConfig every bounded-aware subcommand
// runs under, from the persistent --max-env-pairs flag.
func engineConfig() antirx.EngineConfig {
	return antirx.EngineConfig{MaxEnvPairs: *rootFlags.maxEnvPairs}
}

var rootCmd = &cobra.Command{
	Use:   "antirx",
	Short: "Decide relations and compute set algebra over regular languages",
	Long: `antirx treats regular-expression patterns as values in an algebra
of languages: it decides equivalence and containment between patterns,
and computes their intersection, difference, XOR, and canonical form —
all without matching any input string.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := hclog.Info
		if *rootFlags.verbose {
			level = hclog.Debug
		}
		logger = logging.New(logging.Config{Name: "antirx", Level: level, Output: os.Stderr})
		return nil
	},
}

func init() {
	rootFlags.verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	rootFlags.maxEnvPairs = rootCmd.PersistentFlags().Int("max-env-pairs", 0,
		"cap the coinduction environment at this many pattern pairs (0 = unbounded)")
}

// Execute runs the antirx command tree. Error reporting is left to
// main: cobra's own printing is silenced so each failure surfaces
// exactly once.
func Execute() error {
	return rootCmd.Execute()
}
