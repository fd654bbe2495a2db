package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/signadot/tokline/libdiff"
	"github.com/signadot/tokline/stream"
	"github.com/signadot/tokline/tlist"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='print in color'"`
	Verbose bool `cli:"name=v aliases=verbose desc='log debug messages'"`
	Header  int  `cli:"name=head desc='tokens to decode before the rest of each record (0 for all)'"`
	Version int  `cli:"name=version desc='message version passed to registered marshalers'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) state() *tlist.MsgState {
	return tlist.NewMsgState(cfg.Version)
}

func (cfg *MainConfig) decOpts() []stream.DecoderOption {
	res := []stream.DecoderOption{stream.DecodeState(cfg.state())}
	if cfg.Header > 0 {
		res = append(res, stream.DecodeHeader(cfg.Header))
	}
	return res
}

// useColor reports whether output to w is colored: always with -color,
// and when -color is not given, if w is a terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) colors(w io.Writer) *Colors {
	if !cfg.useColor(w) {
		return nil
	}
	color.NoColor = false
	return NewColors()
}

func (cfg *MainConfig) diffColors(w io.Writer) *libdiff.Colors {
	if !cfg.useColor(w) {
		return nil
	}
	color.NoColor = false
	return &libdiff.Colors{
		Delete: color.RedString,
		Insert: color.GreenString,
	}
}

type DumpConfig struct {
	*MainConfig
	Schema string `cli:"name=s aliases=schema desc='label tokens with the fields of a schema file'"`

	Dump *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Schema string `cli:"name=s aliases=schema desc='schema file to check every record against'"`
	Dir    string `cli:"name=d aliases=dir desc='directory of schemas selected by the first token'"`

	Check *cli.Command
}

type MatchConfig struct {
	*MainConfig
	Invert bool `cli:"name=x desc='write the records which do not match'"`
	Count  bool `cli:"name=n desc='only print the number of matching records'"`

	Match *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}
