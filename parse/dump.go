package parse

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/h5dump-format/h5dump/token"
)

// Boundary is the inclusive line range of one block.
type Boundary struct {
	Kind  token.Kind `json:"kind" yaml:"kind"`
	Start int        `json:"start" yaml:"start"`
	End   int        `json:"end" yaml:"end"`
}

// Contains reports whether o lies within b.
func (b Boundary) Contains(o Boundary) bool {
	return b.Start <= o.Start && o.End <= b.End
}

// Len is the number of lines in the block, header and closer included.
func (b Boundary) Len() int {
	return b.End - b.Start + 1
}

func (b Boundary) String() string {
	return fmt.Sprintf("%s[%d,%d]", b.Kind, b.Start, b.End)
}

// Entry is a qualified path with its boundary.
type Entry struct {
	Path string `json:"path" yaml:"path"`
	Boundary
}

// Orphan is a dataset header which no group contains.
type Orphan struct {
	Name string `json:"name" yaml:"name"`
	Line int    `json:"line" yaml:"line"`
}

// Dump is the structural index of one h5dump report.  It is built once by
// Parse and must not be modified.
type Dump struct {
	// Source is the file the lines were read from, if known.
	Source string
	Lines  []string

	// Container is the container name when exactly one container header
	// exists; Containers holds every container header name.
	Container  string
	Containers []string

	// Groups holds the group names in document order.
	Groups []string
	// Datasets holds the qualified dataset paths in the order they were
	// resolved: by owning group, then document order.
	Datasets []string
	Index    map[string]Boundary
	Orphans  []Orphan

	owner   map[string]string
	entries []Entry
}

func (d *Dump) String() string {
	name := d.Source
	if name == "" {
		name = d.Container
	}
	return fmt.Sprintf("<H5dump: %s>", filepath.Base(name))
}

func (d *Dump) Get(path string) (Boundary, bool) {
	b, ok := d.Index[path]
	return b, ok
}

// Entries returns every boundary ordered by start line, then path.
func (d *Dump) Entries() []Entry {
	return d.entries
}

// Block returns the lines of the block at path.
func (d *Dump) Block(path string) ([]string, error) {
	b, ok := d.Index[path]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, path)
	}
	return slices.Clone(d.Lines[b.Start : b.End+1]), nil
}

// Owner returns the group which directly contains the dataset at path.
func (d *Dump) Owner(path string) (string, bool) {
	g, ok := d.owner[path]
	return g, ok
}

// DatasetsOf returns the paths of the datasets directly contained in group.
func (d *Dump) DatasetsOf(group string) ([]string, error) {
	b, ok := d.Index[group]
	if !ok || b.Kind != token.Group {
		return nil, &UnknownGroupError{Group: group}
	}
	var res []string
	for _, p := range d.Datasets {
		if d.owner[p] == group {
			res = append(res, p)
		}
	}
	return res, nil
}

// GroupsOf returns the groups whose blocks lie directly inside group.
func (d *Dump) GroupsOf(group string) ([]string, error) {
	gb, ok := d.Index[group]
	if !ok || gb.Kind != token.Group {
		return nil, &UnknownGroupError{Group: group}
	}
	var res []string
	for _, e := range d.entries {
		if e.Kind != token.Group || e.Path == group || !gb.Contains(e.Boundary) {
			continue
		}
		if p := d.parentGroup(e.Boundary); p == group {
			res = append(res, e.Path)
		}
	}
	return res, nil
}

// parentGroup finds the innermost group strictly enclosing b.
func (d *Dump) parentGroup(b Boundary) string {
	res := ""
	best := -1
	for _, e := range d.entries {
		if e.Kind != token.Group || e.Boundary == b || !e.Contains(b) {
			continue
		}
		if e.Start > best {
			best = e.Start
			res = e.Path
		}
	}
	return res
}

func (d *Dump) sortEntries() {
	d.entries = make([]Entry, 0, len(d.Index))
	for p, b := range d.Index {
		d.entries = append(d.entries, Entry{Path: p, Boundary: b})
	}
	slices.SortFunc(d.entries, func(a, b Entry) int {
		if a.Start != b.Start {
			return a.Start - b.Start
		}
		return strings.Compare(a.Path, b.Path)
	})
}
