package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/signadot/tokline/schema"
	"github.com/signadot/tokline/tlist"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	var s *schema.Schema
	if cfg.Schema != "" {
		s, err = schema.Load(cfg.Schema)
		if err != nil {
			return err
		}
	}
	colors := cfg.colors(cc.Out)
	n := 0
	return eachRecord(cfg.MainConfig, cc, args, func(r *record) error {
		if n > 0 {
			if _, err := io.WriteString(cc.Out, "\n"); err != nil {
				return err
			}
		}
		n++
		return dumpRecord(cfg, cc.Out, colors, s, r)
	})
}

func dumpRecord(cfg *DumpConfig, w io.Writer, colors *Colors, s *schema.Schema, r *record) error {
	head := r.List.Len()
	pending := r.List.Pending()
	if err := r.List.FinishParsing(cfg.state()); err != nil {
		return fmt.Errorf("%s: %w", r, err)
	}
	var fields []string
	if s != nil {
		labels, err := s.Label(r.List)
		if err != nil {
			return fmt.Errorf("%s: %w", r, err)
		}
		for _, lb := range labels {
			fields = append(fields, lb.Field.Name)
		}
	}
	b := &strings.Builder{}
	fmt.Fprintf(b, "%s\n", r)
	for i, tok := range r.List.Tokens() {
		if pending && i == head {
			fmt.Fprintf(b, "  %s\n", colors.Color(tlist.NullKind, SepColor)("--"))
		}
		k := tok.Kind()
		fmt.Fprintf(b, "  %3d ", i)
		if fields != nil {
			fmt.Fprintf(b, "%s ", colors.Color(k, FieldColor)(fmt.Sprintf("%-12s", fields[i])))
		}
		fmt.Fprintf(b, "%s %s\n",
			colors.Color(k, KindColor)(fmt.Sprintf("%-9s", k)),
			colors.Color(k, ValueColor)(tlist.Describe(tok)))
	}
	_, err := io.WriteString(w, b.String())
	return err
}
