// Package encode writes dump indices as text, JSON or YAML.
package encode

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/h5dump-format/h5dump/parse"
	"github.com/h5dump-format/h5dump/token"

	"github.com/goccy/go-yaml"
)

// Doc is the serialized form of a dump index.
type Doc struct {
	Source     string                    `json:"source,omitempty" yaml:"source,omitempty"`
	Container  string                    `json:"container" yaml:"container"`
	Containers []string                  `json:"containers,omitempty" yaml:"containers,omitempty"`
	Groups     []string                  `json:"groups" yaml:"groups"`
	Datasets   []string                  `json:"datasets" yaml:"datasets"`
	Index      map[string]parse.Boundary `json:"index" yaml:"index"`
	Orphans    []parse.Orphan            `json:"orphans,omitempty" yaml:"orphans,omitempty"`
}

func NewDoc(d *parse.Dump) *Doc {
	doc := &Doc{
		Source:    d.Source,
		Container: d.Container,
		Groups:    d.Groups,
		Datasets:  d.Datasets,
		Index:     d.Index,
		Orphans:   d.Orphans,
	}
	if len(d.Containers) != 1 {
		doc.Containers = d.Containers
	}
	if doc.Groups == nil {
		doc.Groups = []string{}
	}
	if doc.Datasets == nil {
		doc.Datasets = []string{}
	}
	return doc
}

// Encode writes the boundary index of d to w.
func Encode(d *parse.Dump, w io.Writer, opts ...EncodeOption) error {
	o := newEncOpts(opts)
	if o.format.IsText() {
		return encodeText(d, w, o)
	}
	return encodeData(NewDoc(d), w, o)
}

// JSON returns the indented JSON encoding of d's index document.
func JSON(d *parse.Dump) ([]byte, error) {
	return json.MarshalIndent(NewDoc(d), "", "  ")
}

func encodeData(v any, w io.Writer, o *encOpts) error {
	var (
		data []byte
		err  error
	)
	if o.format.IsYAML() {
		data, err = yaml.Marshal(v)
	} else {
		data, err = json.MarshalIndent(v, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", o.format, err)
	}
	_, err = w.Write(data)
	return err
}

func encodeText(d *parse.Dump, w io.Writer, o *encOpts) error {
	bw := bufio.NewWriter(w)
	c := o.colors
	fmt.Fprintln(bw, c.Color(token.Container, HeaderColor, d.String()))
	writeEntries(bw, d.Entries(), len(d.Lines), c)
	if o.orphans {
		for _, orph := range d.Orphans {
			fmt.Fprintf(bw, "# orphan %s %q at line %d\n", token.Dataset.Keyword(), orph.Name, orph.Line)
		}
	}
	return bw.Flush()
}

func writeEntries(w io.Writer, entries []parse.Entry, nLines int, c *Colors) {
	pathW := 0
	for i := range entries {
		pathW = max(pathW, len(entries[i].Path))
	}
	numW := len(strconv.Itoa(nLines))
	for i := range entries {
		e := &entries[i]
		kind := fmt.Sprintf("%-7s", e.Kind.Keyword())
		path := e.Path + strings.Repeat(" ", pathW-len(e.Path))
		rng := fmt.Sprintf("%*d %*d", numW, e.Start, numW, e.End)
		fmt.Fprintf(w, "%s %s %s\n",
			c.Color(e.Kind, KindColor, kind),
			c.Color(e.Kind, PathColor, path),
			c.Color(e.Kind, RangeColor, rng))
	}
}

// Row is the serialized form of one index entry.
type Row struct {
	Path  string     `json:"path" yaml:"path"`
	Kind  token.Kind `json:"kind" yaml:"kind"`
	Start int        `json:"start" yaml:"start"`
	End   int        `json:"end" yaml:"end"`
}

// EncodeEntries writes a selection of the entries of d, such as the result
// of a match, in the same layout Encode uses for the whole index.
func EncodeEntries(d *parse.Dump, entries []parse.Entry, w io.Writer, opts ...EncodeOption) error {
	o := newEncOpts(opts)
	if !o.format.IsText() {
		rows := make([]Row, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, Row{Path: e.Path, Kind: e.Kind, Start: e.Start, End: e.End})
		}
		return encodeData(rows, w, o)
	}
	bw := bufio.NewWriter(w)
	writeEntries(bw, entries, len(d.Lines), o.colors)
	return bw.Flush()
}

// Names is the serialized form of the names found in a dump.
type Names struct {
	Container  string   `json:"container" yaml:"container"`
	Containers []string `json:"containers,omitempty" yaml:"containers,omitempty"`
	Groups     []string `json:"groups" yaml:"groups"`
	Datasets   []string `json:"datasets" yaml:"datasets"`
}

// EncodeNames writes the container, group and dataset names of d.
func EncodeNames(d *parse.Dump, w io.Writer, opts ...EncodeOption) error {
	o := newEncOpts(opts)
	doc := NewDoc(d)
	if !o.format.IsText() {
		return encodeData(&Names{
			Container:  doc.Container,
			Containers: doc.Containers,
			Groups:     doc.Groups,
			Datasets:   doc.Datasets,
		}, w, o)
	}
	c := o.colors
	bw := bufio.NewWriter(w)
	writeName := func(k token.Kind, name string) {
		fmt.Fprintf(bw, "%s %s\n", c.Color(k, KindColor, k.Keyword()), c.Color(k, PathColor, name))
	}
	if d.Container != "" {
		writeName(token.Container, d.Container)
	} else {
		for _, name := range d.Containers {
			writeName(token.Container, name)
		}
	}
	for _, g := range d.Groups {
		writeName(token.Group, g)
	}
	for _, p := range d.Datasets {
		writeName(token.Dataset, p)
	}
	return bw.Flush()
}

// Block is the serialized form of one block.
type Block struct {
	Path  string   `json:"path" yaml:"path"`
	Kind  string   `json:"kind" yaml:"kind"`
	Start int      `json:"start" yaml:"start"`
	End   int      `json:"end" yaml:"end"`
	Lines []string `json:"lines" yaml:"lines"`
}

// EncodeBlock writes the lines of the block at path.
func EncodeBlock(d *parse.Dump, path string, w io.Writer, opts ...EncodeOption) error {
	o := newEncOpts(opts)
	lines, err := d.Block(path)
	if err != nil {
		return err
	}
	b, _ := d.Get(path)
	if !o.format.IsText() {
		return encodeData(&Block{
			Path:  path,
			Kind:  b.Kind.String(),
			Start: b.Start,
			End:   b.End,
			Lines: lines,
		}, w, o)
	}
	bw := bufio.NewWriter(w)
	numW := len(strconv.Itoa(b.End))
	for i, ln := range lines {
		if i == 0 {
			ln = o.colors.Color(b.Kind, HeaderColor, ln)
		}
		if o.lineNumbers {
			fmt.Fprintf(bw, "%s  ", o.colors.Color(b.Kind, RangeColor, fmt.Sprintf("%*d", numW, b.Start+i)))
		}
		fmt.Fprintln(bw, ln)
	}
	return bw.Flush()
}
