package main

import (
	"strings"

	"github.com/h5dump-format/h5dump/format"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: " + formatNames(),
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		},
		&cli.Opt{
			Name:        "dups",
			Description: "duplicate path policy: error, first, last",
			Type:        cli.NamedFuncOpt(cfg.dupsFunc(), "(policy)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "h5d").
		WithSynopsis("h5d [opts] command [opts]").
		WithDescription("h5d indexes the group and dataset blocks of h5dump reports.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return h5dMain(cfg, cc, args)
		}).
		WithSubs(
			IndexCommand(cfg),
			NamesCommand(cfg),
			BlockCommand(cfg),
			MatchCommand(cfg),
			DiffCommand(cfg))
}

// formatNames lists the output formats with their short forms.
func formatNames() string {
	var names []string
	for _, f := range format.AllFormats() {
		names = append(names, f.String()+"/"+f.String()[:1])
	}
	return strings.Join(names, ", ")
}

func IndexCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &IndexConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Index, "index").
		WithAliases("i", "idx").
		WithSynopsis("index [opts] [files]").
		WithDescription("show the line range of every group and dataset").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return index(cfg, cc, args)
		})
}

func NamesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &NamesConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Names, "names").
		WithAliases("n").
		WithSynopsis("names [files]").
		WithDescription("list container, group and dataset names").
		WithRun(func(cc *cli.Context, args []string) error {
			return names(cfg, cc, args)
		})
}

func BlockCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BlockConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Block, "block").
		WithAliases("b").
		WithSynopsis("block [opts] <path> [files]").
		WithDescription("print the block of a group or dataset").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return block(cfg, cc, args)
		})
}

func MatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Match, "match").
		WithAliases("m").
		WithSynopsis("match [opts] <expr> [files]").
		WithDescription(matchDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return match(cfg, cc, args)
		})
}

const matchDescription = `match selects index entries with a boolean expression.

The expression is evaluated once per group and dataset with these
variables:

  path   qualified path, e.g. /Eff/FPDU
  name   last path segment
  kind   "GROUP" or "DATASET"
  start  header line index
  end    closing line index
  lines  number of lines in the block
  depth  number of path segments
  group  owning group of a dataset

and these functions:

  line(i)      text of line i
  block(path)  text of the block at path

Example

  h5d match 'kind == "DATASET" && block(path) contains "H5T_STRING"' f.dump.gz`

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff [opts] a b").
		WithDescription("compare the structure of two dumps").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}
