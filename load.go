// Package h5dump indexes the text reports written by h5dump.
//
// [Load] reads a (possibly gzip compressed) dump and returns its structural
// index; [Match] selects entries of an index with an expression.
package h5dump

import (
	"fmt"

	"github.com/h5dump-format/h5dump/parse"
	"github.com/h5dump-format/h5dump/source"
)

// Load reads the dump at path and parses it.
func Load(path string, opts ...parse.ParseOption) (*parse.Dump, error) {
	lines, err := source.ReadFile(path)
	if err != nil {
		return nil, err
	}
	opts = append([]parse.ParseOption{parse.ParseSource(path)}, opts...)
	d, err := parse.Parse(lines, opts...)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	return d, nil
}
