package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/signadot/tokline/stream"
	"github.com/signadot/tokline/tlist"
)

// record is a decoded list together with where it was read from.
type record struct {
	File string
	Line int
	List *tlist.List
}

func (r *record) String() string {
	return fmt.Sprintf("%s:%d", r.File, r.Line)
}

type recordFunc func(r *record) error

// eachRecord calls f for every record of files, or of stdin when there
// are none.
func eachRecord(cfg *MainConfig, cc *cli.Context, files []string, f recordFunc) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		if err := eachFileRecord(cfg, cc, file, f); err != nil {
			return err
		}
	}
	return nil
}

func eachFileRecord(cfg *MainConfig, cc *cli.Context, file string, f recordFunc) error {
	var r io.Reader
	if file != "-" {
		fd, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer fd.Close()
		r = fd
	} else {
		r = cc.In
	}
	dec := stream.NewDecoder(r, cfg.decOpts()...)
	for {
		l, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			theLog.Debug("read", "file", file, "records", dec.Line())
			return nil
		}
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		if err := f(&record{File: file, Line: dec.Line(), List: l}); err != nil {
			return err
		}
	}
}

// readRecords reads all records of one file.
func readRecords(cfg *MainConfig, cc *cli.Context, file string) ([]*record, error) {
	var res []*record
	err := eachFileRecord(cfg, cc, file, func(r *record) error {
		if err := r.List.FinishParsing(cfg.state()); err != nil {
			return fmt.Errorf("%s: %w", r, err)
		}
		res = append(res, r)
		return nil
	})
	return res, err
}
