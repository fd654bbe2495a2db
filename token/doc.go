// Package token provides the character level layer of the tokline wire
// format.
//
// A record is a single line of raw tokens separated by [Delim]. Inside a
// token every reserved character is preceded by [EscapeChar] and an
// actual line return is written as [EscapeChar] followed by
// [EscapedReturn], so that one record always occupies exactly one line.
//
// [Escape] and [Unescape] convert single values, [Tokenizer] is a cursor
// which splits a record into unescaped tokens, and [Sink] writes tokens
// to an [io.Writer] while tracking offsets.
//
// # Related Packages
//
//   - github.com/signadot/tokline/tlist - typed tokens and lists built on this package
package token
