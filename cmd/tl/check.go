package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/tokline/schema"
	"github.com/signadot/tokline/tlist"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if (cfg.Schema == "") == (cfg.Dir == "") {
		return fmt.Errorf("%w: check requires exactly one of -s, -d", cli.ErrUsage)
	}
	pick, err := cfg.schemaFunc()
	if err != nil {
		return err
	}
	total, failed := 0, 0
	err = eachRecord(cfg.MainConfig, cc, args, func(r *record) error {
		total++
		if err := r.List.FinishParsing(cfg.state()); err != nil {
			return fmt.Errorf("%s: %w", r, err)
		}
		s, err := pick(r.List)
		if err == nil {
			err = s.Check(r.List)
		}
		if err != nil {
			failed++
			_, werr := fmt.Fprintf(cc.Out, "%s: %v\n", r, err)
			return werr
		}
		theLog.Debug("ok", "record", r.String(), "schema", s.Name)
		return nil
	})
	if err != nil {
		return err
	}
	theLog.Info("checked", "records", total, "failed", failed)
	if failed > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// schemaFunc returns a function choosing the schema for a record.
func (cfg *CheckConfig) schemaFunc() (func(*tlist.List) (*schema.Schema, error), error) {
	if cfg.Schema != "" {
		s, err := schema.Load(cfg.Schema)
		if err != nil {
			return nil, err
		}
		return func(*tlist.List) (*schema.Schema, error) { return s, nil }, nil
	}
	ss, err := schema.LoadDir(cfg.Dir)
	if err != nil {
		return nil, err
	}
	for _, s := range ss {
		if err := schema.Register(s); err != nil {
			return nil, fmt.Errorf("error loading %s: %w", cfg.Dir, err)
		}
	}
	theLog.Debug("loaded schemas", "dir", cfg.Dir, "names", schema.Names())
	return func(l *tlist.List) (*schema.Schema, error) {
		tok, err := l.PeekToken()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(tlist.String)
		if !ok {
			return nil, fmt.Errorf("first token %s does not name a schema", tlist.Describe(tok))
		}
		s := schema.Lookup(string(name))
		if s == nil {
			return nil, fmt.Errorf("no schema named %q", string(name))
		}
		return s, nil
	}, nil
}
