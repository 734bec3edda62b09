package kinshipmap

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoRelationships is returned when the inputs exist but contain no pairs.
var ErrNoRelationships = errors.New("no relationship rows were found in the input")

// MissingInputError is returned when neither the same-family (.kin) nor the
// cross-family (.kin0) table exists for a prefix.
type MissingInputError struct {
	Prefix string
	Tried  []string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("neither .kin nor .kin0 file found for %s (tried %s)", e.Prefix, strings.Join(e.Tried, ", "))
}

// MalformedInputError describes a table that could not be parsed. Line is
// 1-based and counts the header; it is 0 when the problem is not tied to a
// single line.
type MalformedInputError struct {
	Path   string
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *MalformedInputError) Error() string {
	b := strings.Builder{}
	b.WriteString("malformed input ")
	b.WriteString(e.Path)
	if e.Line > 0 {
		fmt.Fprintf(&b, " line %d", e.Line)
	}
	if e.Column != "" {
		fmt.Fprintf(&b, " column %s", e.Column)
	}
	if e.Value != "" {
		fmt.Fprintf(&b, " value %q", e.Value)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	return b.String()
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// DuplicatePairWarning is produced when the same unordered pair of subjects
// shows up more than once. The later row overwrites the earlier one.
type DuplicatePairWarning struct {
	ID1      string
	ID2      string
	Previous float64
	Current  float64
}

func (w DuplicatePairWarning) String() string {
	if w.ID1 == w.ID2 {
		return fmt.Sprintf("pair %s/%s relates a subject to itself and was skipped", w.ID1, w.ID2)
	}
	return fmt.Sprintf("pair %s/%s seen more than once; kept %g (replaced %g)", w.ID1, w.ID2, w.Current, w.Previous)
}
