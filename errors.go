package antirx

import (
	"errors"
	"fmt"

	"github.com/coregx/antirx/ast"
)

// ErrorKind classifies an *Error returned from the public API.
type ErrorKind uint8

const (
	// ErrInvalidArgument marks a malformed repeat bound: Repeat(r, m,
	// n) with m < 0 or n < m.
	ErrInvalidArgument ErrorKind = iota
	// ErrParse marks a failure from the Parser collaborator.
	ErrParse
	// ErrInternalInvariant marks a violated term-algebra invariant or a
	// Var node that escaped an internal algorithm — a programmer error.
	// The Bounded operations also report an exceeded
	// EngineConfig.MaxEnvPairs budget under this kind.
	ErrInternalInvariant
)

func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidArgument:
		return "InvalidArgument"
	case ErrParse:
		return "ParseError"
	case ErrInternalInvariant:
		return "InternalInvariant"
	default:
		return "Unknown"
	}
}

// Error is the error type returned by every antirx operation that can
// fail. Err, when non-nil, is the underlying cause (a *rxsyntax.ParseError
// for Kind == ErrParse, an *ast.InvariantError for the other two kinds,
// or the ErrEnvLimitExceeded sentinel of package decide or setalg when a
// Bounded operation exceeded its budget).
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("antirx: %s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("antirx: %s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// fromInvariant adapts an *ast.InvariantError (InvalidArgument or
// InternalInvariant, per ast/errors.go) into the public *Error type.
func fromInvariant(err error) *Error {
	var ie *ast.InvariantError
	if !errors.As(err, &ie) {
		return &Error{Kind: ErrInternalInvariant, Msg: "unexpected internal error", Err: err}
	}
	kind := ErrInternalInvariant
	if ie.Kind == ast.KindInvalidArgument {
		kind = ErrInvalidArgument
	}
	return &Error{Kind: kind, Msg: ie.Msg, Err: ie}
}
