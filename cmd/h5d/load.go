package main

import (
	"fmt"
	"io"

	"github.com/h5dump-format/h5dump"
	"github.com/h5dump-format/h5dump/parse"
	"github.com/h5dump-format/h5dump/source"

	"github.com/scott-cotton/cli"
)

// loadArg loads the dump named by arg, reading cc.In when arg is "-".
func loadArg(cfg *MainConfig, cc *cli.Context, arg string) (*parse.Dump, error) {
	if arg != "-" {
		return h5dump.Load(arg, cfg.parseOpts()...)
	}
	lines, err := source.ReadLines(cc.In)
	if err != nil {
		return nil, fmt.Errorf("error reading stdin: %w", err)
	}
	opts := append([]parse.ParseOption{parse.ParseSource(arg)}, cfg.parseOpts()...)
	return parse.Parse(lines, opts...)
}

// eachDump loads every dump named in args, or stdin when there are none,
// and calls f on each with output separated by "---".
func eachDump(cfg *MainConfig, cc *cli.Context, args []string, f func(io.Writer, *parse.Dump) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	w := cc.Out
	for i, arg := range args {
		d, err := loadArg(cfg, cc, arg)
		if err != nil {
			return err
		}
		if err := f(w, d); err != nil {
			return fmt.Errorf("error processing %s: %w", arg, err)
		}
		if i < len(args)-1 {
			w.Write([]byte("\n---\n"))
		}
	}
	return nil
}
