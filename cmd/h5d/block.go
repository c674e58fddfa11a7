package main

import (
	"fmt"
	"io"

	"github.com/h5dump-format/h5dump/encode"
	"github.com/h5dump-format/h5dump/parse"

	"github.com/scott-cotton/cli"
)

func block(cfg *BlockConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Block.Parse(cc, args)
	if err != nil {
		cfg.Block.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	path, files, err := blockArgs(args)
	if err != nil {
		return err
	}
	return eachDump(cfg.MainConfig, cc, files, func(w io.Writer, d *parse.Dump) error {
		return encode.EncodeBlock(d, path, w, cfg.encOpts(w)...)
	})
}

// blockArgs splits args into the block path and the dump files.  Paths are
// index keys as written by h5dump, absolute or not.
func blockArgs(args []string) (string, []string, error) {
	if len(args) == 0 {
		return "", nil, fmt.Errorf("%w: block requires a path argument", cli.ErrUsage)
	}
	if args[0] == "" {
		return "", nil, fmt.Errorf("%w: empty path", cli.ErrUsage)
	}
	return args[0], args[1:], nil
}
