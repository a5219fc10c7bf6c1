// Copyright 2026 The h11parse Authors.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package h11parse

import "github.com/intuitivelabs/h11parse/internal/classify"

func isAlpha(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// stepRequestLine parses one request line: method SP target SP
// "HTTP/" DIGIT "." DIGIT CRLF. The whole line is buffered by scanLine
// before any field is inspected, so unlike the incremental
// character-at-a-time automaton this is modeled on, there is no
// partial-line sub-state to carry across Parse calls - only the line
// boundary itself needs to survive a short read.
func (p *Parser) stepRequestLine() Error {
	contentEnd, nextPos, badAt, status := p.scanLine(p.cfg.MaxRequestLineLen)
	switch status {
	case lineNeedMore:
		return ErrNeedMoreData
	case lineTooLong:
		return p.fail(ErrRequestLineTooLong, p.pos)
	case lineBadCRLF:
		return p.fail(ErrInvalidCRLF, badAt)
	}

	lineStart := p.pos
	line := p.buf[lineStart:contentEnd]
	tolerate := p.cfg.has(TolerateSpaces)

	i := 0
	for i < len(line) && classify.IsTChar(line[i]) {
		i++
	}
	if i == 0 {
		return p.fail(ErrInvalidMethod, lineStart)
	}
	methodEnd := i
	if i >= len(line) || line[i] != ' ' {
		return p.fail(ErrInvalidMethod, lineStart+i)
	}
	if tolerate {
		for i < len(line) && line[i] == ' ' {
			i++
		}
	} else {
		i++
		if i < len(line) && line[i] == ' ' {
			return p.fail(ErrInvalidMethod, lineStart+i)
		}
	}
	p.req.Method.Set(lineStart, lineStart+methodEnd)

	targetStart := i
	for i < len(line) && line[i] != ' ' {
		c := line[i]
		if !(classify.IsURIChar(c) || c == '?' || c == '#') {
			return p.fail(ErrInvalidTarget, lineStart+i)
		}
		i++
	}
	if i == targetStart {
		return p.fail(ErrInvalidTarget, lineStart+i)
	}
	if i >= len(line) {
		return p.fail(ErrInvalidTarget, lineStart+i)
	}
	targetEnd := i
	p.req.Target.Set(lineStart+targetStart, lineStart+targetEnd)
	p.req.TargetForm = classifyTargetForm(line[targetStart:targetEnd])

	if line[i] != ' ' {
		return p.fail(ErrInvalidTarget, lineStart+i)
	}
	if tolerate {
		for i < len(line) && line[i] == ' ' {
			i++
		}
	} else {
		i++
		if i < len(line) && line[i] == ' ' {
			return p.fail(ErrInvalidTarget, lineStart+i)
		}
	}

	rest := line[i:]
	version, ok := parseVersion(rest)
	if !ok {
		return p.fail(ErrInvalidVersion, lineStart+i)
	}
	p.req.Version = version

	p.pos = nextPos
	p.scanFrom = nextPos
	return ErrOK
}

// classifyTargetForm tags t (the raw target bytes, SP-delimited but
// otherwise unvalidated beyond uri-char/?/#) per RFC 7230 §5.3.
func classifyTargetForm(t []byte) TargetForm {
	if len(t) == 1 && t[0] == '*' {
		return TargetAsterisk
	}
	if t[0] == '/' {
		return TargetOrigin
	}
	if isAlpha(t[0]) {
		k := 1
		for k < len(t) && (isAlpha(t[k]) || classify.IsDigit(t[k]) || t[k] == '+' || t[k] == '-' || t[k] == '.') {
			k++
		}
		if k < len(t) && t[k] == ':' {
			return TargetAbsolute
		}
	}
	return TargetAuthority
}

// parseVersion accepts exactly "HTTP/1.0" or "HTTP/1.1".
func parseVersion(b []byte) (uint16, bool) {
	if len(b) != 8 {
		return 0, false
	}
	if b[0] != 'H' || b[1] != 'T' || b[2] != 'T' || b[3] != 'P' || b[4] != '/' {
		return 0, false
	}
	if !classify.IsDigit(b[5]) || b[6] != '.' || !classify.IsDigit(b[7]) {
		return 0, false
	}
	major := b[5] - '0'
	minor := b[7] - '0'
	v := uint16(major)<<8 | uint16(minor)
	if v != 0x0100 && v != 0x0101 {
		return 0, false
	}
	return v, true
}
