// Package source reads h5dump reports as sequences of trimmed lines.
//
// Files whose name ends in "gz" are decompressed.  Every line must be valid
// UTF-8; the first invalid line fails the read with a *DecodeError.
package source

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/h5dump-format/h5dump/debug"
	"github.com/h5dump-format/h5dump/token"

	"github.com/klauspost/compress/gzip"
)

// DecodeError reports a line which is not valid UTF-8.
type DecodeError struct {
	Source string
	Line   int
}

func (e *DecodeError) Unwrap() error {
	return token.ErrBadUTF8
}

func (e *DecodeError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("%s at line %d", token.ErrBadUTF8, e.Line)
	}
	return fmt.Sprintf("%s: %s at line %d", e.Source, token.ErrBadUTF8, e.Line)
}

// Compressed reports whether path names a gzip compressed dump.
func Compressed(path string) bool {
	return strings.HasSuffix(path, "gz")
}

// ReadFile reads all lines of the dump at path.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	defer f.Close()
	var r io.Reader = f
	if Compressed(path) {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("could not decompress %q: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}
	res, err := ReadLines(r)
	if err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			de.Source = path
			return nil, de
		}
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	if debug.Source() {
		debug.Logf("source: %d lines from %s (gzip=%t)\n", len(res), path, Compressed(path))
	}
	return res, nil
}

// ReadLines reads r to the end and returns its lines with surrounding
// white space removed.  A final line without a newline is kept.
func ReadLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	var res []string
	for i := 0; ; i++ {
		ln, err := br.ReadBytes('\n')
		if len(ln) > 0 {
			if !utf8.Valid(ln) {
				return nil, &DecodeError{Line: i}
			}
			res = append(res, string(bytes.TrimSpace(ln)))
		}
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
