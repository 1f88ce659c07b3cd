package types

import (
	"errors"
	"fmt"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindInvalidPath     ErrKind = iota + 1 // malformed path syntax (empty segment, reserved character)
	ErrKindNotFound                           // path does not resolve, or resolves to a node without a value
	ErrKindSelfContainment                    // merge destination is the source or lies below it
	ErrKindAlreadyExists                      // strict insert onto an occupied node, duplicate registration
)

// String returns a short, stable name for the kind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindInvalidPath:
		return "invalid path"
	case ErrKindNotFound:
		return "not found"
	case ErrKindSelfContainment:
		return "self containment"
	case ErrKindAlreadyExists:
		return "already exists"
	default:
		return fmt.Sprintf("ErrKind(%d)", int(k))
	}
}

// Error is a typed error with an optional path and underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Path string // offending path, if any
	Err  error  // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Msg
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %q", msg, e.Path)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind. This lets
// errors.Is(err, ErrNotFound) match errors that carry path context.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) || t == nil || e == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels commonly returned by implementations.
var (
	// ErrInvalidPath indicates a path that cannot be parsed into segments.
	ErrInvalidPath = &Error{Kind: ErrKindInvalidPath, Msg: "invalid path"}
	// ErrNotFound indicates a missing node, or a node holding no value where one was required.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
	// ErrSelfContainment indicates a merge that would place a subtree inside itself.
	ErrSelfContainment = &Error{Kind: ErrKindSelfContainment, Msg: "destination is inside source"}
	// ErrAlreadyExists indicates a strict insert onto a node that already holds a value.
	ErrAlreadyExists = &Error{Kind: ErrKindAlreadyExists, Msg: "already exists"}
)

// WithPath returns a copy of the sentinel annotated with the offending path.
func WithPath(sentinel *Error, path string) *Error {
	return &Error{Kind: sentinel.Kind, Msg: sentinel.Msg, Path: path}
}

// Wrap returns a copy of the sentinel annotated with a path and cause.
func Wrap(sentinel *Error, path string, cause error) *Error {
	return &Error{Kind: sentinel.Kind, Msg: sentinel.Msg, Path: path, Err: cause}
}

// KindOf extracts the ErrKind of the first *Error in err's chain.
func KindOf(err error) (ErrKind, bool) {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e.Kind, true
	}
	return 0, false
}
