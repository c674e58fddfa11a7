package parse

import (
	"errors"
	"fmt"

	"github.com/h5dump-format/h5dump/token"
)

// DuplicatePolicy says what happens when two blocks produce the same
// qualified path.
type DuplicatePolicy int

const (
	// ErrorOnDuplicate fails the parse with a *DuplicateError.
	ErrorOnDuplicate DuplicatePolicy = iota
	// FirstWins keeps the boundary of the first block.
	FirstWins
	// LastWins keeps the boundary of the last block.
	LastWins
)

var ErrBadPolicy = errors.New("bad duplicate policy")

func ParseDuplicatePolicy(v string) (DuplicatePolicy, error) {
	p, ok := map[string]DuplicatePolicy{
		"error": ErrorOnDuplicate,
		"first": FirstWins,
		"last":  LastWins,
	}[v]
	if ok {
		return p, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadPolicy, v)
}

func (p DuplicatePolicy) String() string {
	d, err := p.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (p DuplicatePolicy) MarshalText() ([]byte, error) {
	switch p {
	case ErrorOnDuplicate:
		return []byte("error"), nil
	case FirstWins:
		return []byte("first"), nil
	case LastWins:
		return []byte("last"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a duplicate policy>", p)
	}
}

func (p *DuplicatePolicy) UnmarshalText(d []byte) error {
	pp, err := ParseDuplicatePolicy(string(d))
	if err != nil {
		return err
	}
	*p = pp
	return nil
}

type parseOpts struct {
	patterns   map[token.Kind]*token.Pattern
	duplicates DuplicatePolicy
	source     string
}

func newParseOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{patterns: token.DefaultPatterns()}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts
}

type ParseOption func(*parseOpts)

// ParsePattern replaces the header pattern used for p.Kind.
func ParsePattern(p *token.Pattern) ParseOption {
	return func(o *parseOpts) { o.patterns[p.Kind] = p }
}

func ParseDuplicates(p DuplicatePolicy) ParseOption {
	return func(o *parseOpts) { o.duplicates = p }
}

// ParseSource records the name of the file the lines came from.
func ParseSource(name string) ParseOption {
	return func(o *parseOpts) { o.source = name }
}
