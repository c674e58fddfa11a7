package main

import (
	"fmt"
	"io"

	"github.com/h5dump-format/h5dump/libdiff"
	"github.com/h5dump-format/h5dump/parse"

	"github.com/scott-cotton/cli"

	"github.com/fatih/color"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	d1, err := loadArg(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error loading %s: %w", args[0], err)
	}
	d2, err := loadArg(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error loading %s: %w", args[1], err)
	}
	differs, err := diffInputs(cfg, cc.Out, d1, d2)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffInputs(cfg *DiffConfig, w io.Writer, a, b *parse.Dump) (bool, error) {
	if cfg.Patch {
		if cfg.Reverse {
			a, b = b, a
		}
		patch, err := libdiff.MergePatch(a, b)
		if err != nil {
			return false, err
		}
		if string(patch) == "{}" {
			return false, nil
		}
		_, err = w.Write(append(patch, '\n'))
		return true, err
	}
	d := libdiff.Diff(a, b)
	if d == nil {
		return false, nil
	}
	if cfg.Reverse {
		d = libdiff.Reverse(d)
	}
	if err := writeResult(cfg, w, d); err != nil {
		return false, err
	}
	return true, nil
}

func writeResult(cfg *DiffConfig, w io.Writer, r *libdiff.Result) error {
	colored := cfg.colored(w)
	if colored {
		color.NoColor = false
	}
	return libdiff.Write(w, r, cfg.Lines, colored)
}
