// Copyright 2026 The h11parse Authors.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package h11parse

import "github.com/intuitivelabs/bytescase"

// Span is an (offset, length) pair referring into a contiguous byte
// buffer. Spans never own memory; their validity is tied to the
// buffer's lifetime (here, the Parser's own accumulation buffer,
// returned by Parser.Buf - see Parser doc comment).
//
// Go has no borrow checker: callers are responsible for not retaining
// a Span past a Parser.Reset call.
type Span struct {
	Offs uint32
	Len  uint32
}

// Set points the span at buf[start:end).
func (s *Span) Set(start, end int) {
	s.Offs = uint32(start)
	s.Len = uint32(end - start)
}

// Extend grows the span's end to newEnd, keeping Offs unchanged.
func (s *Span) Extend(newEnd int) {
	s.Len = uint32(newEnd) - s.Offs
}

// Reset sets the span to its empty value.
func (s *Span) Reset() { *s = Span{} }

// Empty reports whether the span has zero length.
func (s Span) Empty() bool { return s.Len == 0 }

// End returns the offset immediately after the span.
func (s Span) End() int { return int(s.Offs) + int(s.Len) }

// Get returns the byte slice of buf that the span refers to.
func (s Span) Get(buf []byte) []byte {
	return buf[s.Offs : s.Offs+s.Len]
}

// EqCaseFold reports whether s, read from buf, case-insensitively
// equals cmp. ASCII-only folding: non-ASCII bytes compare verbatim.
func (s Span) EqCaseFold(buf []byte, cmp string) bool {
	if int(s.Len) != len(cmp) {
		return false
	}
	return bytescase.CmpEq(s.Get(buf), []byte(cmp))
}

// HeaderNameEq reports whether the header name span, read from base,
// case-insensitively equals cmp. Matches the §6 API surface
// (header_name_eq in the C original).
func HeaderNameEq(base []byte, name Span, cmp string) bool {
	return name.EqCaseFold(base, cmp)
}
