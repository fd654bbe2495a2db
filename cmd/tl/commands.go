package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "tl").
		WithSynopsis("tl [opts] command [opts]").
		WithDescription("tl is a tool for working with tokenized list records.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tlMain(cfg, cc, args)
		}).
		WithSubs(
			DumpCommand(cfg),
			CheckCommand(cfg),
			MatchCommand(cfg),
			DiffCommand(cfg))
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithAliases("du").
		WithSynopsis("dump [-s schema.yaml] [files]").
		WithDescription("print the tokens of each record, one per line, in color on a terminal").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c", "ch").
		WithSynopsis("check (-s schema.yaml | -d dir) [files]").
		WithDescription(checkDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

const checkDescription = `check records against positional schemas.

With -s every record is checked against one schema.  With -d every
.yaml file in the directory is loaded and each record is checked
against the schema named by its first token, which must be a string.`

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

const matchDescription = `match writes the records for which a boolean expression holds.

The expression sees

  tokens   the token values of the record
  line     the record number within its file, from 1
  file     the file name, or - for stdin

and the functions

  kind(i)  the kind name of token i, such as String or Int64
  nv(n)    the value of the first name/value token named n, or nil

for example: match 'tokens[0] == "join" && nv("observe") != true'`

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff [-r] a b").
		WithDescription("diff the records of two files, record by record").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}
