// Package logging wires the host-debugging side of antirx: the CLI
// and any caller that wants progress/diagnostic output uses this
// package's hclog wiring rather than the standard library's log.
//
// The decision-procedure core itself never logs: it is a pure value
// algebra, so this package exists only for cmd/antirx and any future
// caller-facing tooling.
package logging

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
)

// Config controls logger construction.
type Config struct {
	// Name appears as a prefix on every emitted line.
	Name string
	// Level is one of hclog.Trace, Debug, Info, Warn, Error.
	Level hclog.Level
	// Output is where log lines are written. Defaults to os.Stderr.
	Output io.Writer
	// JSON switches to structured JSON output, useful when cmd/antirx
	// is invoked from another tool's pipeline.
	JSON bool
}

// DefaultConfig returns a Config writing Info-and-above lines to
// os.Stderr in human-readable form.
func DefaultConfig() Config {
	return Config{
		Name:   "antirx",
		Level:  hclog.Info,
		Output: os.Stderr,
	}
}

// New constructs a logger from cfg.
func New(cfg Config) hclog.Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	if cfg.Level == hclog.NoLevel {
		cfg.Level = hclog.Info
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:       cfg.Name,
		Level:      cfg.Level,
		Output:     cfg.Output,
		JSONFormat: cfg.JSON,
	})
}
