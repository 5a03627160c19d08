package antirx

// EngineConfig bounds the internal coinduction/fixed-point environments
// used by Equiv, PartialCompare, and the setalg combinators. Each pair
// those environments hold corresponds to one state pair of the
// reachable derivative automaton, so the bound caps peak memory.
type EngineConfig struct {
	// MaxEnvPairs bounds the number of (term, term) pairs (for
	// Canonical, terms) a single top-level call may visit before it gives up rather
	// than continuing to expand a pathologically large derivative
	// automaton. Zero means unbounded.
	MaxEnvPairs int
}

// DefaultEngineConfig returns an EngineConfig with no bound: callers
// that want the resource guard must opt in explicitly.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{MaxEnvPairs: 0}
}
