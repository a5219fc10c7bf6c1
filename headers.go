// Copyright 2026 The h11parse Authors.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package h11parse

import "github.com/intuitivelabs/h11parse/internal/classify"

// stepHeaders consumes header lines until the empty-line terminator,
// then runs end-of-headers semantic validation and decides the body
// framing. Like stepRequestLine, each header line is fully buffered by
// scanLine before its fields are inspected.
func (p *Parser) stepHeaders() Error {
	for {
		contentEnd, nextPos, badAt, status := p.scanLine(p.cfg.MaxHeaderLineLen)
		switch status {
		case lineNeedMore:
			return ErrNeedMoreData
		case lineTooLong:
			return p.fail(ErrHeaderLineTooLong, p.pos)
		case lineBadCRLF:
			return p.fail(ErrInvalidCRLF, badAt)
		}

		lineStart := p.pos
		line := p.buf[lineStart:contentEnd]
		lineLen := uint32(nextPos - lineStart)

		if len(line) == 0 {
			p.pos = nextPos
			p.scanFrom = nextPos
			return p.finishHeaders()
		}

		if p.headersSize+lineLen > p.cfg.MaxHeadersSize {
			return p.fail(ErrHeadersTooLarge, lineStart)
		}
		p.headersSize += lineLen

		if line[0] == ' ' || line[0] == '\t' {
			if p.cfg.has(RejectObsFold) || p.lastHeaderIdx < 0 {
				return p.fail(ErrObsFoldRejected, lineStart)
			}
			if err := p.collapseObsFold(lineStart, line); err != ErrOK {
				return err
			}
			p.pos = nextPos
			p.scanFrom = nextPos
			continue
		}

		if err := p.parseOneHeader(lineStart, line); err != ErrOK {
			return err
		}
		p.pos = nextPos
		p.scanFrom = nextPos
	}
}

// parseOneHeader parses one `field-name ":" OWS field-value OWS` line
// (line already excludes the CRLF terminator) and appends it to the
// current header list (p.req.Trailers while p.inTrailers is set,
// p.req.Headers otherwise).
func (p *Parser) parseOneHeader(lineStart int, line []byte) Error {
	i := 0
	for i < len(line) && classify.IsTChar(line[i]) {
		i++
	}
	if i == 0 {
		return p.fail(ErrInvalidHeaderName, lineStart)
	}
	if i >= len(line) || line[i] != ':' {
		return p.fail(ErrInvalidHeaderName, lineStart+i)
	}
	nameEnd := i
	i++

	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	valStart := i
	j := len(line)
	for j > valStart && (line[j-1] == ' ' || line[j-1] == '\t') {
		j--
	}
	valEnd := j

	if err := p.validateHeaderValueBytes(line[valStart:valEnd], lineStart+valStart); err != ErrOK {
		return err
	}

	var h Header
	h.Name.Set(lineStart, lineStart+nameEnd)
	h.Value.Set(lineStart+valStart, lineStart+valEnd)
	h.NameID = lookupKnownHeader(line[:nameEnd])
	if h.NameID != HdrNone {
		h.Flags |= HeaderKnownName
	}

	if p.inTrailers {
		if h.NameID != HdrNone {
			return p.fail(ErrInvalidTrailer, lineStart)
		}
		if !p.req.addHeader(h, &p.req.Trailers, int(p.cfg.MaxHeaderCount)) {
			return p.fail(ErrTooManyHeaders, lineStart)
		}
		p.req.TrailerCount = uint32(len(p.req.Trailers))
		p.lastHeaderIdx = len(p.req.Trailers) - 1
		return ErrOK
	}

	if !p.req.addHeader(h, &p.req.Headers, int(p.cfg.MaxHeaderCount)) {
		return p.fail(ErrTooManyHeaders, lineStart)
	}
	idx := len(p.req.Headers) - 1
	p.req.recordKnown(h, idx)
	p.req.HeaderCount = uint32(len(p.req.Headers))
	p.lastHeaderIdx = idx
	switch h.NameID {
	case HdrHost:
		p.seenHost = true
	case HdrContentLength:
		p.seenContentLength = true
	case HdrTransferEncoding:
		p.seenTransferEncoding = true
	}
	return ErrOK
}

func (p *Parser) validateHeaderValueBytes(v []byte, base int) Error {
	for k, c := range v {
		if c == ' ' || c == '\t' {
			continue
		}
		if c >= 0x80 {
			if p.cfg.has(AllowObsText) {
				continue
			}
			return p.fail(ErrInvalidHeaderValue, base+k)
		}
		if classify.IsVChar(c) {
			continue
		}
		return p.fail(ErrInvalidHeaderValue, base+k)
	}
	return ErrOK
}

// collapseObsFold folds a continuation line into the previous header's
// value. Because the two halves of a folded value are not contiguous
// on the wire, this is the one place the parser copies bytes rather
// than pointing a span at existing ones: the combined value is
// appended to the tail of the accumulation buffer and the previous
// header's Value span is repointed at it.
func (p *Parser) collapseObsFold(lineStart int, line []byte) Error {
	trimmed := trimOWS(line)
	if err := p.validateHeaderValueBytes(trimmed, lineStart); err != ErrOK {
		return err
	}

	var prev *Header
	if p.inTrailers {
		prev = &p.req.Trailers[p.lastHeaderIdx]
	} else {
		prev = &p.req.Headers[p.lastHeaderIdx]
	}
	prevBytes := prev.Value.Get(p.buf)
	combined := make([]byte, 0, len(prevBytes)+1+len(trimmed))
	combined = append(combined, prevBytes...)
	combined = append(combined, ' ')
	combined = append(combined, trimmed...)

	newStart := len(p.buf)
	p.buf = append(p.buf, combined...)
	prev.Value.Set(newStart, newStart+len(combined))
	return ErrOK
}

// finishHeaders runs the end-of-headers semantic checks (spec.md §4.2)
// and decides which state the message body transitions into.
func (p *Parser) finishHeaders() Error {
	if p.inTrailers {
		p.state = StateComplete
		return ErrOK
	}

	if err := p.validateHost(); err != ErrOK {
		return err
	}
	if err := p.validateContentLength(); err != ErrOK {
		return err
	}
	if err := p.validateTransferEncoding(); err != ErrOK {
		return err
	}
	if p.cfg.has(RejectTECLConflict) &&
		p.req.Flags&FlagHasContentLength != 0 &&
		p.req.Flags&FlagHasTransferEncoding != 0 {
		return p.fail(ErrTECLConflict, p.pos)
	}
	p.validateConnection()
	p.validateExpect()

	switch {
	case p.req.Flags&FlagIsChunked != 0:
		p.req.BodyType = BodyChunked
		p.state = StateBodyChunkedSize
	case p.req.Flags&FlagHasContentLength != 0 && p.req.ContentLength > 0:
		p.req.BodyType = BodyContentLength
		p.bodyRemaining = p.req.ContentLength
		p.state = StateBodyIdentity
	default:
		p.req.BodyType = BodyNone
		p.state = StateComplete
	}
	return ErrOK
}
