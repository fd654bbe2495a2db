package libdiff

import "fmt"

// Op is the kind of a Change.
type Op int

const (
	Delete Op = iota
	Insert
	Replace
)

var opNames = map[Op]string{
	Delete:  "delete",
	Insert:  "insert",
	Replace: "replace",
}

var opSigns = map[Op]byte{
	Delete:  '-',
	Insert:  '+',
	Replace: '~',
}

func (o Op) String() string {
	if s, ok := opNames[o]; ok {
		return s
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// Sign is the one character prefix used when printing a change.
func (o Op) Sign() byte {
	return opSigns[o]
}

func (o Op) reverse() Op {
	switch o {
	case Delete:
		return Insert
	case Insert:
		return Delete
	}
	return o
}
