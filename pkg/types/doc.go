// Package types holds the shared error taxonomy for pathkit.
//
// Every fallible tree operation reports one of a closed set of kinds:
//
//   - ErrKindInvalidPath: the path string is malformed (empty segment between
//     separators, reserved character inside a segment).
//   - ErrKindNotFound: the path does not resolve to a node, or resolves to a
//     node that holds no value where a value was required.
//   - ErrKindSelfContainment: a merge would graft a subtree inside itself.
//   - ErrKindAlreadyExists: a strict insert found an existing value.
//
// Errors carry the offending path and match their sentinel with errors.Is:
//
//	if errors.Is(err, types.ErrNotFound) {
//	    // treat as a no-op
//	}
//
// This package has no dependencies beyond the standard library.
package types
