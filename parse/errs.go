package parse

import (
	"errors"
	"fmt"

	"github.com/h5dump-format/h5dump/token"
)

var (
	ErrParse           = errors.New("parse error")
	ErrPatternMismatch = fmt.Errorf("%w: no canonical header", ErrParse)
	ErrUnknownGroup    = fmt.Errorf("%w: group not found", ErrParse)
	ErrDuplicate       = fmt.Errorf("%w: duplicate path", ErrParse)
	ErrNotFound        = errors.New("not found")
)

// PatternMismatchError reports a name extracted by a header pattern for
// which no canonical header line exists.
type PatternMismatchError struct {
	Kind token.Kind
	Name string
	// Line is the line that matched the pattern, or -1 when the name
	// came from the extraction phase.
	Line int
}

func (e *PatternMismatchError) Unwrap() error {
	return ErrPatternMismatch
}

func (e *PatternMismatchError) Error() string {
	if e.Line < 0 {
		return fmt.Sprintf("%s: %s %q", ErrPatternMismatch, e.Kind, e.Name)
	}
	return fmt.Sprintf("%s: %s %q at line %d", ErrPatternMismatch, e.Kind, e.Name, e.Line)
}

type UnknownGroupError struct {
	Group string
}

func (e *UnknownGroupError) Unwrap() error {
	return ErrUnknownGroup
}

func (e *UnknownGroupError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownGroup, e.Group)
}

// DuplicateError reports two blocks mapping to the same qualified path.
type DuplicateError struct {
	Path          string
	First, Second int
}

func (e *DuplicateError) Unwrap() error {
	return ErrDuplicate
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s: %q at lines %d and %d", ErrDuplicate, e.Path, e.First, e.Second)
}
