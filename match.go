package h5dump

import (
	"fmt"
	"strings"

	"github.com/h5dump-format/h5dump/debug"
	"github.com/h5dump-format/h5dump/parse"
	"github.com/h5dump-format/h5dump/token"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Env is what a match expression sees for each entry of a dump index.
type Env struct {
	Path  string `expr:"path"`
	Name  string `expr:"name"`
	Kind  string `expr:"kind"`
	Start int    `expr:"start"`
	End   int    `expr:"end"`
	Lines int    `expr:"lines"`
	Depth int    `expr:"depth"`
	// Group is the owning group of a dataset, empty for groups.
	Group string `expr:"group"`
}

type MatchConfig struct {
	Kinds []token.Kind
}

type MatchOpt func(*MatchConfig)

// MatchKinds restricts matching to entries of the given kinds.
func MatchKinds(ks ...token.Kind) MatchOpt {
	return func(c *MatchConfig) { c.Kinds = append(c.Kinds, ks...) }
}

// Matcher is a compiled match expression bound to one dump.
type Matcher struct {
	dump    *parse.Dump
	program *vm.Program
	cfg     MatchConfig
}

// Compile compiles query, a boolean expr-lang expression over Env, for
// use on d.  Besides the Env fields, queries may call line(i), the text of
// line i, and block(path), the text of the block at path.
func Compile(d *parse.Dump, query string, opts ...MatchOpt) (*Matcher, error) {
	m := &Matcher{dump: d}
	for _, f := range opts {
		f(&m.cfg)
	}
	program, err := expr.Compile(query, exprOpts(d)...)
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", query, err)
	}
	m.program = program
	return m, nil
}

func exprOpts(d *parse.Dump) []expr.Option {
	return []expr.Option{
		expr.Env(Env{}),
		expr.AsBool(),
		expr.Function("line", func(params ...any) (any, error) {
			i, ok := params[0].(int)
			if !ok {
				return nil, fmt.Errorf("line: expected int, got %T", params[0])
			}
			if i < 0 || i >= len(d.Lines) {
				return nil, fmt.Errorf("line: %d out of range [0,%d)", i, len(d.Lines))
			}
			return d.Lines[i], nil
		}),
		expr.Function("block", func(params ...any) (any, error) {
			p, ok := params[0].(string)
			if !ok {
				return nil, fmt.Errorf("block: expected string, got %T", params[0])
			}
			lines, err := d.Block(p)
			if err != nil {
				return nil, err
			}
			return strings.Join(lines, "\n"), nil
		}),
	}
}

// Match returns the entries of the dump, in index order, for which the
// expression is true.
func (m *Matcher) Match() ([]parse.Entry, error) {
	var res []parse.Entry
	for _, e := range m.dump.Entries() {
		if !m.kindOK(e.Kind) {
			continue
		}
		env := NewEnv(m.dump, e)
		out, err := expr.Run(m.program, env)
		if err != nil {
			return nil, fmt.Errorf("error matching %q: %w", e.Path, err)
		}
		ok, _ := out.(bool)
		if debug.Match() {
			debug.Logf("match %q: %t\n", e.Path, ok)
		}
		if ok {
			res = append(res, e)
		}
	}
	return res, nil
}

func (m *Matcher) kindOK(k token.Kind) bool {
	if len(m.cfg.Kinds) == 0 {
		return true
	}
	for _, mk := range m.cfg.Kinds {
		if mk == k {
			return true
		}
	}
	return false
}

// Match compiles query for d and applies it.
func Match(d *parse.Dump, query string, opts ...MatchOpt) ([]parse.Entry, error) {
	m, err := Compile(d, query, opts...)
	if err != nil {
		return nil, err
	}
	return m.Match()
}

func NewEnv(d *parse.Dump, e parse.Entry) Env {
	segs := parse.Segments(e.Path)
	env := Env{
		Path:  e.Path,
		Kind:  e.Kind.String(),
		Start: e.Start,
		End:   e.End,
		Lines: e.Len(),
		Depth: len(segs),
	}
	if len(segs) > 0 {
		env.Name = segs[len(segs)-1]
	}
	if g, ok := d.Owner(e.Path); ok {
		env.Group = g
	}
	return env
}
