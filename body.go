// Copyright 2026 The h11parse Authors.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package h11parse

import "github.com/intuitivelabs/h11parse/internal/classify"

// ReadBody feeds data into the parser while it is in one of the body
// states (BODY_IDENTITY, BODY_CHUNKED_*, TRAILERS) and returns as soon
// as a non-empty payload slice is available, the buffer is exhausted
// mid-unit, the message completes, or an error occurs. Internal
// transitions between chunk-size, chunk-data, and chunk-CRLF
// sub-states happen transparently across calls to this one entry
// point, matching the single read_body contract of spec.md §4.3.
func (p *Parser) ReadBody(data []byte) (n int, body []byte, result Error) {
	if p.state == StateError {
		return 0, nil, p.lastErr
	}
	if p.state == StateComplete {
		return 0, nil, ErrOK
	}

	defer func() {
		if r := recover(); r != nil {
			p.recoverFrom(r)
			n, body, result = len(data), nil, p.lastErr
		}
	}()

	p.callStart = len(p.buf)
	p.buf = append(p.buf, data...)

	for {
		switch p.state {
		case StateBodyIdentity:
			body, err := p.stepBodyIdentity()
			if err == ErrNeedMoreData {
				return len(data), nil, ErrNeedMoreData
			}
			if err.Fatal() {
				return len(data), nil, err
			}
			return len(data), body, ErrOK
		case StateBodyChunkedSize:
			err := p.stepChunkSize()
			if err == ErrNeedMoreData {
				return len(data), nil, ErrNeedMoreData
			}
			if err.Fatal() {
				return len(data), nil, err
			}
			// advanced to BODY_CHUNKED_DATA or TRAILERS; keep going
		case StateBodyChunkedData:
			body, err := p.stepChunkData()
			if err == ErrNeedMoreData {
				return len(data), nil, ErrNeedMoreData
			}
			if err.Fatal() {
				return len(data), nil, err
			}
			return len(data), body, ErrOK
		case StateBodyChunkedCRLF:
			err := p.stepChunkCRLF()
			if err == ErrNeedMoreData {
				return len(data), nil, ErrNeedMoreData
			}
			if err.Fatal() {
				return len(data), nil, err
			}
			// advanced back to BODY_CHUNKED_SIZE; keep going
		case StateTrailers:
			err := p.stepHeaders()
			if err == ErrNeedMoreData {
				return len(data), nil, ErrNeedMoreData
			}
			if err.Fatal() {
				return len(data), nil, err
			}
			return len(data), nil, ErrOK
		default:
			return len(data), nil, ErrOK
		}
	}
}

// stepBodyIdentity hands back up to body_remaining bytes of whatever
// is buffered, transitioning to COMPLETE once the declared
// Content-Length has been satisfied.
func (p *Parser) stepBodyIdentity() ([]byte, Error) {
	avail := len(p.buf) - p.pos
	if avail == 0 {
		if p.bodyRemaining == 0 {
			p.state = StateComplete
			return nil, ErrOK
		}
		return nil, ErrNeedMoreData
	}
	n := avail
	if uint64(n) > p.bodyRemaining {
		n = int(p.bodyRemaining)
	}
	out := p.buf[p.pos : p.pos+n]
	p.pos += n
	p.bodyRemaining -= uint64(n)
	p.totalBodyRead += uint64(n)
	if p.totalBodyRead > p.cfg.MaxBodySize {
		return nil, p.fail(ErrBodyTooLarge, p.pos)
	}
	if p.bodyRemaining == 0 {
		p.state = StateComplete
	}
	return out, ErrOK
}

// stepChunkSize parses one chunk-size line: hex digits, an optional
// chunk-extension, CRLF. Grounded on the chunk-size grammar of RFC
// 7230 §4.1.
func (p *Parser) stepChunkSize() Error {
	maxLen := p.cfg.MaxChunkExtLen + 64
	contentEnd, nextPos, badAt, status := p.scanLine(maxLen)
	switch status {
	case lineNeedMore:
		return ErrNeedMoreData
	case lineTooLong:
		return p.fail(ErrChunkExtTooLong, p.pos)
	case lineBadCRLF:
		return p.fail(ErrInvalidChunkSize, badAt)
	}

	lineStart := p.pos
	line := p.buf[lineStart:contentEnd]

	i := 0
	for i < len(line) && classify.IsHexDigit(line[i]) {
		i++
	}
	if i == 0 {
		return p.fail(ErrInvalidChunkSize, lineStart)
	}
	if i > 16 {
		return p.fail(ErrChunkSizeOverflow, lineStart)
	}
	var size uint64
	for k := 0; k < i; k++ {
		size = size<<4 | uint64(classify.HexVal(line[k]))
	}
	if size > maxContentLength {
		return p.fail(ErrChunkSizeOverflow, lineStart)
	}

	if i < len(line) {
		if line[i] != ';' {
			return p.fail(ErrInvalidChunkSize, lineStart+i)
		}
		extStart := i
		for j := i; j < len(line); j++ {
			c := line[j]
			if !(classify.IsTChar(c) || c == '=' || c == '"' || c == ';' || classify.IsVChar(c) || c == ' ' || c == '\t') {
				return p.fail(ErrInvalidChunkExt, lineStart+j)
			}
		}
		extLen := uint32(len(line) - extStart)
		if extLen > p.cfg.MaxChunkExtLen {
			return p.fail(ErrChunkExtTooLong, lineStart+extStart)
		}
	}

	p.pos = nextPos
	p.scanFrom = nextPos
	if size == 0 {
		p.inTrailers = true
		p.lastHeaderIdx = -1
		p.state = StateTrailers
	} else {
		p.bodyRemaining = size
		p.state = StateBodyChunkedData
	}
	return ErrOK
}

// stepChunkData behaves like stepBodyIdentity but transitions to
// BODY_CHUNKED_CRLF, not COMPLETE, once the current chunk is drained.
func (p *Parser) stepChunkData() ([]byte, Error) {
	avail := len(p.buf) - p.pos
	if avail == 0 {
		return nil, ErrNeedMoreData
	}
	n := avail
	if uint64(n) > p.bodyRemaining {
		n = int(p.bodyRemaining)
	}
	out := p.buf[p.pos : p.pos+n]
	p.pos += n
	p.bodyRemaining -= uint64(n)
	p.totalBodyRead += uint64(n)
	if p.totalBodyRead > p.cfg.MaxBodySize {
		return nil, p.fail(ErrBodyTooLarge, p.pos)
	}
	if p.bodyRemaining == 0 {
		p.state = StateBodyChunkedCRLF
	}
	return out, ErrOK
}

// stepChunkCRLF consumes the line terminator following chunk data.
func (p *Parser) stepChunkCRLF() Error {
	if p.pos >= len(p.buf) {
		return ErrNeedMoreData
	}
	if p.buf[p.pos] == '\r' {
		if p.pos+1 >= len(p.buf) {
			return ErrNeedMoreData
		}
		if p.buf[p.pos+1] != '\n' {
			return p.fail(ErrInvalidChunkData, p.pos)
		}
		p.pos += 2
	} else if p.buf[p.pos] == '\n' {
		if p.cfg.has(StrictCRLF) {
			return p.fail(ErrInvalidChunkData, p.pos)
		}
		p.pos++
	} else {
		return p.fail(ErrInvalidChunkData, p.pos)
	}
	p.scanFrom = p.pos
	p.state = StateBodyChunkedSize
	return ErrOK
}
