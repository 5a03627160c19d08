package ast

import "fmt"

// ErrorKind classifies an ast-level failure. Parse failures are
// raised by package rxsyntax with its own error type; the two kinds
// here cover everything the term algebra itself can signal.
type ErrorKind uint8

const (
	// KindInvalidArgument is raised by Repeat for malformed bounds.
	KindInvalidArgument ErrorKind = iota
	// KindInternalInvariant is raised when a Var escapes its algorithm
	// or another §3 invariant is violated; it is always a programmer
	// error, never a consequence of user input on well-formed terms.
	KindInternalInvariant
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidArgument:
		return "InvalidArgument"
	case KindInternalInvariant:
		return "InternalInvariant"
	default:
		return "ErrorKind(?)"
	}
}

// InvariantError is the error type this package raises, either returned
// directly (InvalidArgument, from Repeat) or recovered from a panic
// (InternalInvariant, from a Var node reached outside a resolve
// activation) via Recover.
type InvariantError struct {
	Kind ErrorKind
	Msg  string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// panicInvariant raises an InternalInvariant failure. It is reached when
// a Var node is encountered by a function that is not part of the
// resolve algorithm, when a switch meets an unknown Kind, or when a
// Repeat derivative computes invalid bounds: a programmer error, not a
// user-facing one —
// hence panic-and-recover rather than a threaded error return through
// every structural-recursion case.
func panicInvariant(msg string) {
	panic(&InvariantError{Kind: KindInternalInvariant, Msg: msg})
}

// Recover turns a panic raised by panicInvariant into an error stored
// through errp, leaving *errp untouched if there was no panic and
// re-panicking anything else. The error-returning decision-procedure
// boundaries (decide.EquivBounded, decide.PartialCompareBounded, the
// setalg Bounded combinators) use it as `defer ast.Recover(&err)` so a
// Var escaping its algorithm surfaces as a normal Go error instead of
// crashing the process.
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if ie, ok := r.(*InvariantError); ok {
		*errp = ie
		return
	}
	panic(r)
}
