package main

import (
	"fmt"
	"io"

	"github.com/h5dump-format/h5dump"
	"github.com/h5dump-format/h5dump/encode"
	"github.com/h5dump-format/h5dump/parse"
	"github.com/h5dump-format/h5dump/token"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Match.Parse(cc, args)
	if err != nil {
		cfg.Match.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires an expression argument", cli.ErrUsage)
	}
	query := args[0]
	var opts []h5dump.MatchOpt
	if cfg.Kind != "" {
		k, err := token.ParseKind(cfg.Kind)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		opts = append(opts, h5dump.MatchKinds(k))
	}
	return eachDump(cfg.MainConfig, cc, args[1:], func(w io.Writer, d *parse.Dump) error {
		entries, err := h5dump.Match(d, query, opts...)
		if err != nil {
			return err
		}
		if cfg.Count {
			_, err := fmt.Fprintln(w, len(entries))
			return err
		}
		return encode.EncodeEntries(d, entries, w, cfg.encOpts(w)...)
	})
}
