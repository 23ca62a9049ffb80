package mapping

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// FieldPath is a parsed dotted member path.
type FieldPath struct {
	Segments []string
}

// NewFieldPath creates a path from its segments.
func NewFieldPath(segments ...string) FieldPath {
	return FieldPath{Segments: segments}
}

// String returns the dotted form of the path.
func (p FieldPath) String() string {
	return strings.Join(p.Segments, ".")
}

// Root returns the first segment, or "" for an empty path.
func (p FieldPath) Root() string {
	if len(p.Segments) == 0 {
		return ""
	}

	return p.Segments[0]
}

// Len returns the number of segments.
func (p FieldPath) Len() int {
	return len(p.Segments)
}

// IsMember returns true if the path goes through at least one member access.
func (p FieldPath) IsMember() bool {
	return len(p.Segments) > 1
}

// Child returns a new path with name appended.
func (p FieldPath) Child(name string) FieldPath {
	segments := make([]string, len(p.Segments), len(p.Segments)+1)
	copy(segments, p.Segments)

	return FieldPath{Segments: append(segments, name)}
}

// ParsePath parses a dotted field path such as "Nested.Value".
func ParsePath(path string) (FieldPath, error) {
	if path == "" {
		return FieldPath{}, errors.New("empty path")
	}

	var segments []string

	for part := range strings.SplitSeq(path, ".") {
		if part == "" {
			return FieldPath{}, errors.Newf("invalid path %q: empty segment", path)
		}

		if strings.HasSuffix(part, "[]") {
			return FieldPath{}, errors.Newf("invalid path %q: element paths are not supported", path)
		}

		if !isValidIdent(part) {
			return FieldPath{}, errors.Newf("invalid path %q: invalid identifier %q", path, part)
		}

		segments = append(segments, part)
	}

	return FieldPath{Segments: segments}, nil
}

// isValidIdent checks if a string is a valid identifier.
func isValidIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if i == 0 {
			if !isLetter(r) && r != '_' {
				return false
			}
		} else if !isLetter(r) && !isDigit(r) && r != '_' {
			return false
		}
	}

	return true
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
