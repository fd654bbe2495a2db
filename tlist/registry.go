package tlist

import (
	"fmt"
	"sort"
	"sync"

	"github.com/signadot/tokline/debug"
)

// Marshaler is implemented by user types which travel as Object tokens.
// DataTag identifies the type on the wire and must be registered with
// Register before values are written or read. The state passed in may
// be nil, Describe for instance has none.
type Marshaler interface {
	DataTag() byte
	MarshalToken(state *MsgState) (string, error)
	UnmarshalToken(state *MsgState, data string) error
}

var (
	mu       sync.RWMutex
	registry = make(map[byte]func() Marshaler)
)

// Register associates tag with a constructor of empty values to decode
// into.
func Register(tag byte, newFunc func() Marshaler) error {
	if newFunc == nil {
		return fmt.Errorf("%w: nil constructor for tag %q", ErrRegistry, tag)
	}
	if tag < '!' || tag > '~' {
		return fmt.Errorf("%w: tag %q is not printable", ErrRegistry, tag)
	}
	if isBuiltinTag(tag) {
		return fmt.Errorf("%w: tag %q is builtin", ErrRegistry, tag)
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := registry[tag]; exists {
		return fmt.Errorf("%w: tag %q already registered", ErrRegistry, tag)
	}
	if debug.Registry() {
		debug.Logf("register tag %q\n", tag)
	}
	registry[tag] = newFunc
	return nil
}

// MustRegister is like Register but panics on error. It is meant for
// init functions.
func MustRegister(tag byte, newFunc func() Marshaler) {
	if err := Register(tag, newFunc); err != nil {
		panic(err)
	}
}

// Lookup returns the constructor registered for tag, or nil.
func Lookup(tag byte) func() Marshaler {
	mu.RLock()
	defer mu.RUnlock()
	return registry[tag]
}

// Tags returns all registered tags in ascending order.
func Tags() []byte {
	mu.RLock()
	defer mu.RUnlock()

	res := make([]byte, 0, len(registry))
	for k := range registry {
		res = append(res, k)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

