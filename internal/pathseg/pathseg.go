// Package pathseg parses slash-delimited tree paths into segments.
//
// Every tree operation goes through Normalize first, so equivalent spellings
// of a path ("a/b", "/a/b", "a/b/") always address the same node.
package pathseg

import (
	"strings"

	"github.com/joshuapare/pathkit/pkg/types"
)

// Separator delimits segments in a path.
const Separator = '/'

// SeparatorString is Separator as a string.
const SeparatorString = string(Separator)

// Normalize splits path into its segments.
//
// The root path is spelled "" or "/" and yields an empty, non-nil slice.
// A single leading and a single trailing separator are ignored. Any empty
// segment left between separators ("a//b", "//") fails with
// types.ErrInvalidPath.
func Normalize(path string) ([]string, error) {
	if path == "" || path == SeparatorString {
		return []string{}, nil
	}

	trimmed := strings.TrimPrefix(path, SeparatorString)
	trimmed = strings.TrimSuffix(trimmed, SeparatorString)
	if trimmed == "" {
		return nil, types.WithPath(types.ErrInvalidPath, path)
	}

	segments := strings.Split(trimmed, SeparatorString)
	for _, seg := range segments {
		if err := ValidateSegment(seg); err != nil {
			return nil, types.Wrap(types.ErrInvalidPath, path, err)
		}
	}
	return segments, nil
}

// segmentError describes why a single segment was rejected.
type segmentError string

func (e segmentError) Error() string { return string(e) }

const (
	errEmptySegment     = segmentError("empty segment")
	errSeparatorSegment = segmentError("segment contains separator")
)

// ValidateSegment reports whether seg may name a child node.
// Segments must be non-empty and must not contain the separator.
func ValidateSegment(seg string) error {
	if seg == "" {
		return errEmptySegment
	}
	if strings.IndexByte(seg, Separator) >= 0 {
		return errSeparatorSegment
	}
	return nil
}

// Join renders segments as a canonical path without leading or trailing
// separators. Join of no segments is the root path "".
func Join(segments []string) string {
	return strings.Join(segments, SeparatorString)
}

// Child appends name to a canonical parent path.
func Child(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + SeparatorString + name
}

// IsWithin reports whether the node addressed by path is the node addressed
// by ancestor or one of its descendants.
func IsWithin(path, ancestor []string) bool {
	if len(path) < len(ancestor) {
		return false
	}
	for i := range ancestor {
		if path[i] != ancestor[i] {
			return false
		}
	}
	return true
}
