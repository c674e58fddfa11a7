package encode

import "github.com/h5dump-format/h5dump/format"

type encOpts struct {
	format      format.Format
	colors      *Colors
	lineNumbers bool
	orphans     bool
}

type EncodeOption func(*encOpts)

func EncodeFormat(f format.Format) EncodeOption {
	return func(o *encOpts) { o.format = f }
}

// EncodeColors colours text output.  It has no effect on JSON or YAML.
func EncodeColors(c *Colors) EncodeOption {
	return func(o *encOpts) { o.colors = c }
}

// EncodeLineNumbers prefixes block lines with their index in the dump.
func EncodeLineNumbers(v bool) EncodeOption {
	return func(o *encOpts) { o.lineNumbers = v }
}

// EncodeOrphans includes datasets outside any group in text output.
func EncodeOrphans(v bool) EncodeOption {
	return func(o *encOpts) { o.orphans = v }
}

func newEncOpts(opts []EncodeOption) *encOpts {
	res := &encOpts{format: format.TextFormat}
	for _, f := range opts {
		f(res)
	}
	return res
}
