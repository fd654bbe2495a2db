package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/tokline/stream"
	"github.com/signadot/tokline/tlist"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

type matchEnv struct {
	Tokens []any  `expr:"tokens"`
	Line   int    `expr:"line"`
	File   string `expr:"file"`
}

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Match.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires 1 argument, an expression", cli.ErrUsage)
	}
	cur := &record{}
	prg, err := compileMatch(args[0], cur)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	enc := stream.NewEncoder(cc.Out, stream.EncodeState(cfg.state()))
	n := 0
	err = eachRecord(cfg.MainConfig, cc, args[1:], func(r *record) error {
		*cur = *r
		ok, err := runMatch(prg, r)
		if err != nil {
			return fmt.Errorf("%s: %w", r, err)
		}
		if ok == cfg.Invert {
			return nil
		}
		n++
		if cfg.Count {
			return nil
		}
		if err := r.List.FinishParsing(cfg.state()); err != nil {
			return fmt.Errorf("%s: %w", r, err)
		}
		return enc.Encode(r.List)
	})
	if err != nil {
		return err
	}
	if cfg.Count {
		_, err = fmt.Fprintf(cc.Out, "%d\n", n)
	}
	return err
}

func compileMatch(src string, cur *record) (*vm.Program, error) {
	opts := append(exprOpts(cur), expr.Env(matchEnv{}), expr.AsBool())
	return expr.Compile(src, opts...)
}

func runMatch(prg *vm.Program, r *record) (bool, error) {
	env := matchEnv{
		Tokens: values(r.List.Tokens()),
		Line:   r.Line,
		File:   r.File,
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return false, err
	}
	return res.(bool), nil
}

func exprOpts(cur *record) []expr.Option {
	return []expr.Option{
		expr.Function("kind", func(params ...any) (any, error) {
			toks := cur.List.Tokens()
			i := params[0].(int)
			if i < 0 || i >= len(toks) {
				return nil, fmt.Errorf("kind(%d): index out of range [0, %d)", i, len(toks))
			}
			return toks[i].Kind().String(), nil
		},
			new(func(int) string)),
		expr.Function("nv", func(params ...any) (any, error) {
			name := params[0].(string)
			for _, tok := range cur.List.Tokens() {
				nv, ok := tok.(*tlist.NameValue)
				if ok && nv.Name == name {
					return value(nv.Value), nil
				}
			}
			return nil, nil
		},
			new(func(string) any)),
	}
}

func values(toks []tlist.Token) []any {
	res := make([]any, len(toks))
	for i, tok := range toks {
		res[i] = value(tok)
	}
	return res
}

// value converts a token to the value an expression sees. Integers
// become int so that they compare with literals.
func value(tok tlist.Token) any {
	switch x := tok.(type) {
	case tlist.String:
		return string(x)
	case tlist.Int32:
		return int(x)
	case tlist.Int64:
		return int(x)
	case tlist.Float64:
		return float64(x)
	case tlist.Bool:
		return bool(x)
	case *tlist.NameValue:
		return map[string]any{x.Name: value(x.Value)}
	case *tlist.List:
		return values(x.Tokens())
	case tlist.Object:
		if x.Value == nil {
			return nil
		}
		return tlist.Describe(x)
	}
	return nil
}
