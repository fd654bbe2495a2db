package tlist

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type point struct {
	X, Y int32
}

func (p *point) DataTag() byte { return 'p' }

func (p *point) MarshalToken(_ *MsgState) (string, error) {
	return fmt.Sprintf("%d:%d", p.X, p.Y), nil
}

func (p *point) UnmarshalToken(_ *MsgState, data string) error {
	xs, ys, ok := strings.Cut(data, ":")
	if !ok {
		return fmt.Errorf("bad point %q", data)
	}
	x, err := strconv.ParseInt(xs, 10, 32)
	if err != nil {
		return err
	}
	y, err := strconv.ParseInt(ys, 10, 32)
	if err != nil {
		return err
	}
	p.X, p.Y = int32(x), int32(y)
	return nil
}

// versioned refuses to decode data written under another protocol
// version.
type versioned struct {
	Name string
}

var errVersion = errors.New("version mismatch")

func (v *versioned) DataTag() byte { return 'V' }

func (v *versioned) MarshalToken(state *MsgState) (string, error) {
	if state == nil {
		return "", errVersion
	}
	return strconv.Itoa(state.Version) + "|" + v.Name, nil
}

func (v *versioned) UnmarshalToken(state *MsgState, data string) error {
	vs, name, _ := strings.Cut(data, "|")
	if state == nil || vs != strconv.Itoa(state.Version) {
		return errVersion
	}
	v.Name = name
	return nil
}

type unregistered struct{}

func (unregistered) DataTag() byte                          { return 'U' }
func (unregistered) MarshalToken(*MsgState) (string, error) { return "", nil }
func (unregistered) UnmarshalToken(*MsgState, string) error { return nil }

func init() {
	MustRegister('p', func() Marshaler { return &point{} })
	MustRegister('V', func() Marshaler { return &versioned{} })
}

type failWriter struct {
	n int
}

var errFail = errors.New("fail")

func (f *failWriter) Write(d []byte) (int, error) {
	if f.n <= 0 {
		return 0, errFail
	}
	f.n--
	return len(d), nil
}

func mustMarshal(l *List, state *MsgState) string {
	s, err := l.Marshal(state)
	if err != nil {
		panic(err)
	}
	return s
}
