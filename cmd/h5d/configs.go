package main

import (
	"fmt"
	"io"
	"os"

	"github.com/h5dump-format/h5dump/encode"
	"github.com/h5dump-format/h5dump/format"
	"github.com/h5dump-format/h5dump/parse"
	"github.com/h5dump-format/h5dump/token"

	"github.com/scott-cotton/cli"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool   `cli:"name=color desc='encode with color'"`
	RC    string `cli:"name=rc desc='settings file (default $H5D_RC)'"`

	T bool `cli:"name=t aliases=text desc='output text'"`
	J bool `cli:"name=j aliases=json desc='output json'"`
	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`

	OutFormat *format.Format
	Dups      *parse.DuplicatePolicy

	rc *RC

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) dupsFunc() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		p, err := parse.ParseDuplicatePolicy(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		cfg.Dups = &p
		return p, nil
	})
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	var res []parse.ParseOption
	dups := cfg.Dups
	if dups == nil && cfg.rc != nil {
		dups = cfg.rc.Duplicates
	}
	if dups != nil {
		res = append(res, parse.ParseDuplicates(*dups))
	}
	if cfg.rc != nil {
		for _, k := range token.Kinds() {
			if p := cfg.rc.patterns[k]; p != nil {
				res = append(res, parse.ParsePattern(p))
			}
		}
	}
	return res
}

func (cfg *MainConfig) format() format.Format {
	var fmat format.Format
	if cfg.rc != nil && cfg.rc.Format != nil {
		fmat = *cfg.rc.Format
	}
	switch {
	case cfg.T:
		fmat = format.TextFormat
	case cfg.Y:
		fmat = format.YAMLFormat
	case cfg.J:
		fmat = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	return fmat
}

// colored reports whether output to w should be coloured.
func (cfg *MainConfig) colored(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.colorSet() {
		return false
	}
	if cfg.rc != nil && cfg.rc.Color != nil {
		return *cfg.rc.Color
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// colorSet reports whether -color was given explicitly.
func (cfg *MainConfig) colorSet() bool {
	if cfg.Main == nil {
		return false
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == "color" {
			return opt.Value != nil
		}
	}
	return false
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.format()),
	}
	if cfg.colored(w) {
		// fatih/color disables itself when stdout is not a terminal.
		color.NoColor = false
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type IndexConfig struct {
	*MainConfig
	Orphans bool `cli:"name=orphans desc='list datasets outside of any group'"`

	Index *cli.Command
}

func (cfg *IndexConfig) encOpts(w io.Writer) []encode.EncodeOption {
	return append(cfg.MainConfig.encOpts(w), encode.EncodeOrphans(cfg.Orphans))
}

type NamesConfig struct {
	*MainConfig

	Names *cli.Command
}

type BlockConfig struct {
	*MainConfig
	N bool `cli:"name=n desc='number lines'"`

	Block *cli.Command
}

func (cfg *BlockConfig) encOpts(w io.Writer) []encode.EncodeOption {
	return append(cfg.MainConfig.encOpts(w), encode.EncodeLineNumbers(cfg.N))
}

type MatchConfig struct {
	*MainConfig
	Kind  string `cli:"name=kind desc='only match entries of kind group or dataset'"`
	Count bool   `cli:"name=c desc='print the number of matches'"`

	Match *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Patch   bool `cli:"name=patch desc='output a json merge patch of the index'"`
	Lines   bool `cli:"name=l desc='show line diffs of changed blocks'"`

	Diff *cli.Command
}
