package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/tokline/libdiff"
	"github.com/signadot/tokline/tlist"
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
	as, err := readRecords(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	bs, err := readRecords(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	colors := cfg.diffColors(cc.Out)
	differs := false
	for i := range max(len(as), len(bs)) {
		a, b := tlist.NewList(), tlist.NewList()
		if i < len(as) {
			a = as[i].List
		}
		if i < len(bs) {
			b = bs[i].List
		}
		d := libdiff.Diff(a, b)
		if d == nil {
			continue
		}
		differs = true
		if cfg.Reverse {
			d = libdiff.Reverse(d)
		}
		if _, err := fmt.Fprintf(cc.Out, "@@ record %d\n", i+1); err != nil {
			return err
		}
		if err := libdiff.Write(cc.Out, d, colors); err != nil {
			return err
		}
	}
	if len(as) != len(bs) {
		theLog.Info("record counts differ", "a", len(as), "b", len(bs))
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}
