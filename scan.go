// Copyright 2026 The h11parse Authors.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package h11parse

import "bytes"

// lineStatus is the outcome of a single scanLine call.
type lineStatus uint8

const (
	lineOK lineStatus = iota
	lineNeedMore
	lineTooLong
	lineBadCRLF
)

// scanLine looks for the next line terminator starting at p.pos, using
// p.scanFrom to avoid re-scanning bytes already known not to contain
// one (so repeated NEED_MORE_DATA calls on a growing buffer stay
// linear overall, not quadratic).
//
// On lineOK, contentEnd is the offset of the first CR/LF of the
// terminator and nextPos is the offset of the first byte after it;
// p.scanFrom is set to nextPos, where the next line starts. Bare LF is
// accepted as a terminator unless StrictCRLF is set, in which case a
// LF not preceded by CR yields lineBadCRLF at the LF's offset.
//
// On lineNeedMore the accumulated (unterminated) line is checked
// against maxLen; if it already exceeds the cap this returns
// lineTooLong instead, so callers don't wait forever for a line that
// can never fit.
func (p *Parser) scanLine(maxLen uint32) (contentEnd, nextPos int, badCRLFAt int, status lineStatus) {
	start := p.pos
	from := p.scanFrom
	if from < start {
		from = start
	}
	if from > len(p.buf) {
		from = len(p.buf)
	}
	rel := bytes.IndexByte(p.buf[from:], '\n')
	if rel < 0 {
		p.scanFrom = len(p.buf)
		if uint32(len(p.buf)-start) > maxLen {
			return 0, 0, 0, lineTooLong
		}
		return 0, 0, 0, lineNeedMore
	}
	j := from + rel
	contentEnd = j
	term := 1
	if j > start && p.buf[j-1] == '\r' {
		contentEnd = j - 1
		term = 2
	} else if p.cfg.has(StrictCRLF) {
		return 0, 0, j, lineBadCRLF
	}
	_ = term
	lineLen := uint32(j + 1 - start)
	if lineLen > maxLen {
		return 0, 0, 0, lineTooLong
	}
	nextPos = j + 1
	p.scanFrom = nextPos
	return contentEnd, nextPos, 0, lineOK
}
