// Package tlist implements tokenized lists, the typed layer of the
// tokline wire format.
//
// A [List] is a queue of [Token] values. Writers add tokens in a fixed
// order and marshal the list to one line; readers parse the line and
// remove tokens in the same order, asking for the kind they expect.
// Asking for the wrong kind is an error, since position is the only
// thing tying a value to its meaning.
//
// # Usage
//
//	l := tlist.NewList()
//	l.AddString("hi:there")
//	l.AddInt32(42)
//	l.AddNull()
//	s, err := l.Marshal(nil) // shi\:there:i42:~
//
//	r, err := tlist.Parse(nil, s, tlist.ReadAll)
//	str, err := r.RemoveString()  // "hi:there"
//	n, err := r.RemoveInt32()     // 42
//	p, err := r.RemoveInt32Ptr()  // nil
//
// # Encoding
//
// Every non-null token is encoded by a [Marshaller] as a one character
// type tag followed by a payload, then escaped with token.Escape. User
// types implement [Marshaler] and are made known with [Register].
//
// # Related Packages
//
//   - github.com/signadot/tokline/token - escaping and tokenization
//   - github.com/signadot/tokline/schema - positional schemas for lists
package tlist
