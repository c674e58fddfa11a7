// Package libdiff compares the structure of two h5dump reports.
package libdiff

import (
	"slices"

	"github.com/h5dump-format/h5dump/parse"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Change is a path present in both dumps whose block differs.
type Change struct {
	Path     string
	From, To parse.Boundary
	// Lines is the line diff of the two blocks, nil when only the kind
	// differs.
	Lines []diffpatch.Diff
}

type Result struct {
	Added   []string
	Removed []string
	// Moved holds paths whose block text is unchanged but whose range is.
	Moved   []string
	Changed []Change
}

func (r *Result) Empty() bool {
	return r == nil || len(r.Added)+len(r.Removed)+len(r.Moved)+len(r.Changed) == 0
}

// Diff compares the boundary indices of from and to, and the text of
// blocks present in both.  It returns nil when there is no difference.
func Diff(from, to *parse.Dump) *Result {
	res := &Result{}
	for _, e := range from.Entries() {
		if _, ok := to.Get(e.Path); !ok {
			res.Removed = append(res.Removed, e.Path)
		}
	}
	for _, e := range to.Entries() {
		fb, ok := from.Get(e.Path)
		if !ok {
			res.Added = append(res.Added, e.Path)
			continue
		}
		fl, _ := from.Block(e.Path)
		tl, _ := to.Block(e.Path)
		lines := DiffLines(fl, tl)
		switch {
		case lines != nil || fb.Kind != e.Kind:
			res.Changed = append(res.Changed, Change{Path: e.Path, From: fb, To: e.Boundary, Lines: lines})
		case fb != e.Boundary:
			res.Moved = append(res.Moved, e.Path)
		}
	}
	if res.Empty() {
		return nil
	}
	return res
}

// Reverse returns the result of diffing in the other direction.
func Reverse(r *Result) *Result {
	if r == nil {
		return nil
	}
	res := &Result{
		Added:   slices.Clone(r.Removed),
		Removed: slices.Clone(r.Added),
		Moved:   slices.Clone(r.Moved),
	}
	for _, c := range r.Changed {
		rc := Change{Path: c.Path, From: c.To, To: c.From}
		for _, d := range c.Lines {
			switch d.Type {
			case diffpatch.DiffInsert:
				d.Type = diffpatch.DiffDelete
			case diffpatch.DiffDelete:
				d.Type = diffpatch.DiffInsert
			}
			rc.Lines = append(rc.Lines, d)
		}
		res.Changed = append(res.Changed, rc)
	}
	return res
}
