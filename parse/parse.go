package parse

import (
	"fmt"
	"slices"

	"github.com/h5dump-format/h5dump/debug"
	"github.com/h5dump-format/h5dump/token"
)

// Parse builds the structural index of the dump held in lines.  Lines are
// expected to be trimmed, as produced by package source.  lines is not
// modified and is retained by the result.
//
// Names are resolved in dependency order: container, group names, group
// boundaries, then the datasets of each group.  Any error is fatal and no
// partial Dump is returned.
func Parse(lines []string, opts ...ParseOption) (*Dump, error) {
	pOpts := newParseOpts(opts)
	d := &Dump{
		Source: pOpts.source,
		Lines:  lines,
		Index:  map[string]Boundary{},
		owner:  map[string]string{},
	}
	d.Container, d.Containers, _ = ScalarName(lines, pOpts.patterns[token.Container])
	d.Groups = Names(lines, pOpts.patterns[token.Group])

	b := &builder{
		dump:     d,
		opts:     pOpts,
		lineIdx:  indexLines(lines),
		groups:   map[string][]Boundary{},
		groupEnd: map[int]int{},
		datasets: map[int]bool{},
	}
	if err := b.groupBoundaries(); err != nil {
		return nil, err
	}
	for _, g := range b.order {
		if err := b.datasetBoundaries(g); err != nil {
			return nil, err
		}
	}
	b.orphans()
	d.sortEntries()
	return d, nil
}

type builder struct {
	dump    *Dump
	opts    *parseOpts
	lineIdx map[string][]int

	// every occurrence of each group, in document order
	groups map[string][]Boundary
	order  []string
	// start line -> end line of every group block
	groupEnd map[int]int
	// start lines of resolved dataset blocks
	datasets map[int]bool
}

// indexLines maps each distinct line to the ascending indices where it
// occurs.
func indexLines(lines []string) map[string][]int {
	res := make(map[string][]int, len(lines))
	for i, ln := range lines {
		res[ln] = append(res[ln], i)
	}
	return res
}

// headerLines returns the ascending indices of every canonical header line
// for name.
func (b *builder) headerLines(k token.Kind, name string) []int {
	var res []int
	for _, h := range token.HeaderForms(k, name) {
		res = append(res, b.lineIdx[h]...)
	}
	slices.Sort(res)
	return res
}

func (b *builder) groupBoundaries() error {
	lines := b.dump.Lines
	for _, name := range b.dump.Groups {
		k := len(b.groups[name])
		at := b.headerLines(token.Group, name)
		if k >= len(at) {
			return &PatternMismatchError{Kind: token.Group, Name: name, Line: -1}
		}
		start := at[k]
		end, err := token.Balance(lines, start)
		if err != nil {
			return fmt.Errorf("group %q: %w", name, err)
		}
		bd := Boundary{Kind: token.Group, Start: start, End: end}
		if debug.Groups() {
			debug.Logf("group %q %s\n", name, bd)
		}
		if k == 0 {
			b.order = append(b.order, name)
		}
		b.groups[name] = append(b.groups[name], bd)
		b.groupEnd[start] = end
		if err := b.put(name, bd); err != nil {
			return err
		}
	}
	return nil
}

// datasetBoundaries resolves the datasets directly inside group.  Nested
// group blocks are skipped, so a dataset belongs only to the innermost group
// containing it.  When a group name occurs more than once, only the
// occurrence kept in the index is scanned; datasets of the others are left
// to the orphans.
func (b *builder) datasetBoundaries(group string) error {
	occs, ok := b.groups[group]
	if !ok {
		return &UnknownGroupError{Group: group}
	}
	gb := occs[0]
	if b.opts.duplicates == LastWins {
		gb = occs[len(occs)-1]
	}
	lines := b.dump.Lines
	pat := b.opts.patterns[token.Dataset]
	for i := gb.Start + 1; i < gb.End; i++ {
		if end, ok := b.groupEnd[i]; ok {
			i = end
			continue
		}
		name, ok := pat.Match(lines[i])
		if !ok {
			continue
		}
		if !token.IsHeader(token.Dataset, name, lines[i]) {
			return &PatternMismatchError{Kind: token.Dataset, Name: name, Line: i}
		}
		end, err := token.Balance(lines, i)
		if err != nil {
			return fmt.Errorf("dataset %q in group %q: %w", name, group, err)
		}
		path := Join(group, name)
		bd := Boundary{Kind: token.Dataset, Start: i, End: end}
		if debug.Datasets() {
			debug.Logf("dataset %q %s\n", path, bd)
		}
		b.datasets[i] = true
		prev, seen := b.dump.Index[path]
		if err := b.put(path, bd); err != nil {
			return err
		}
		if !seen {
			b.dump.Datasets = append(b.dump.Datasets, path)
		}
		if !seen || b.dump.Index[path] != prev {
			b.dump.owner[path] = group
		}
		i = end
	}
	return nil
}

// put records bd at path according to the duplicate policy.
func (b *builder) put(path string, bd Boundary) error {
	prev, ok := b.dump.Index[path]
	if !ok {
		b.dump.Index[path] = bd
		return nil
	}
	switch b.opts.duplicates {
	case FirstWins:
	case LastWins:
		b.dump.Index[path] = bd
	default:
		return &DuplicateError{Path: path, First: prev.Start, Second: bd.Start}
	}
	return nil
}

// orphans records dataset headers which no group claimed.
func (b *builder) orphans() {
	pat := b.opts.patterns[token.Dataset]
	for i, ln := range b.dump.Lines {
		if b.datasets[i] {
			continue
		}
		name, ok := pat.Match(ln)
		if !ok {
			continue
		}
		if debug.Datasets() {
			debug.Logf("orphan dataset %q at line %d\n", name, i)
		}
		b.dump.Orphans = append(b.dump.Orphans, Orphan{Name: name, Line: i})
	}
}
