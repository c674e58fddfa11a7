package main

import (
	"io"

	"github.com/h5dump-format/h5dump/encode"
	"github.com/h5dump-format/h5dump/parse"

	"github.com/scott-cotton/cli"
)

func index(cfg *IndexConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Index.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachDump(cfg.MainConfig, cc, args, func(w io.Writer, d *parse.Dump) error {
		return encode.Encode(d, w, cfg.encOpts(w)...)
	})
}
