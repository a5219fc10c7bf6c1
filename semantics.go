// Copyright 2026 The h11parse Authors.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package h11parse

import "github.com/intuitivelabs/h11parse/internal/classify"

// validateHost enforces RFC 7230 §5.4: exactly one Host header for
// HTTP/1.1, optional for HTTP/1.0, at most one in either case.
func (p *Parser) validateHost() Error {
	count := 0
	idx := -1
	for i, h := range p.req.Headers {
		if h.NameID == HdrHost {
			count++
			if idx < 0 {
				idx = i
			}
		}
	}
	if count > 1 {
		return p.fail(ErrMultipleHost, p.pos)
	}
	if count == 0 {
		if p.req.Version == 0x0101 {
			return p.fail(ErrMissingHost, p.pos)
		}
		return ErrOK
	}
	val := p.req.Headers[idx].Value.Get(p.buf)
	if !validHostToken(val) {
		return p.fail(ErrInvalidHost, p.pos)
	}
	p.req.Flags |= FlagHasHost
	return ErrOK
}

type clenStatus uint8

const (
	clenOK clenStatus = iota
	clenInvalid
	clenOverflow
)

// maxContentLength is 2^63-1, the cap spec.md §4.2 sets for Content-Length.
const maxContentLength = uint64(1)<<63 - 1

func parseCLenToken(t []byte) (uint64, clenStatus) {
	if len(t) == 0 {
		return 0, clenInvalid
	}
	var v uint64
	for _, c := range t {
		if !classify.IsDigit(c) {
			return 0, clenInvalid
		}
		d := uint64(c - '0')
		if v > (maxContentLength-d)/10 {
			return 0, clenOverflow
		}
		v = v*10 + d
	}
	return v, clenOK
}

// validateContentLength gathers every Content-Length occurrence
// (across possibly several header lines, each possibly a comma-list),
// requiring every element to agree on a single value.
func (p *Parser) validateContentLength() Error {
	var value uint64
	have := false
	for _, h := range p.req.Headers {
		if h.NameID != HdrContentLength {
			continue
		}
		for _, t := range splitCommaTokens(p.buf, h.Value) {
			v, st := parseCLenToken(t)
			switch st {
			case clenInvalid:
				return p.fail(ErrInvalidContentLength, p.pos)
			case clenOverflow:
				return p.fail(ErrContentLengthOverflow, p.pos)
			}
			if have {
				if v != value {
					return p.fail(ErrMultipleContentLength, p.pos)
				}
			} else {
				value = v
				have = true
			}
		}
	}
	if have {
		p.req.ContentLength = value
		p.req.Flags |= FlagHasContentLength
	}
	return ErrOK
}

var registeredTransferCodings = []string{"chunked", "compress", "deflate", "gzip", "identity"}

func isRegisteredTransferCoding(t []byte) bool {
	for _, c := range registeredTransferCodings {
		if tokenEq(t, c) {
			return true
		}
	}
	return false
}

// validateTransferEncoding gathers every Transfer-Encoding token
// across every occurrence, in header order, and requires the final
// coding to be chunked.
func (p *Parser) validateTransferEncoding() Error {
	var tokens [][]byte
	any := false
	for _, h := range p.req.Headers {
		if h.NameID != HdrTransferEncoding {
			continue
		}
		any = true
		tokens = append(tokens, splitCommaTokens(p.buf, h.Value)...)
	}
	if !any {
		return ErrOK
	}
	if len(tokens) == 0 {
		return p.fail(ErrInvalidTransferEncoding, p.pos)
	}
	for _, t := range tokens {
		if !isRegisteredTransferCoding(t) {
			return p.fail(ErrUnknownTransferCoding, p.pos)
		}
	}
	p.req.Flags |= FlagHasTransferEncoding
	if !tokenEq(tokens[len(tokens)-1], "chunked") {
		return p.fail(ErrTENotChunkedFinal, p.pos)
	}
	p.req.Flags |= FlagIsChunked
	return ErrOK
}

// validateConnection derives KEEP_ALIVE and HAS_UPGRADE from the
// Connection token list (RFC 7230 §6.1).
func (p *Parser) validateConnection() {
	var hasClose, hasKeepAlive, hasUpgrade bool
	for _, h := range p.req.Headers {
		if h.NameID != HdrConnection {
			continue
		}
		for _, t := range splitCommaTokens(p.buf, h.Value) {
			switch {
			case tokenEq(t, "close"):
				hasClose = true
			case tokenEq(t, "keep-alive"):
				hasKeepAlive = true
			case tokenEq(t, "upgrade"):
				hasUpgrade = true
			}
		}
	}
	var keepAlive bool
	switch p.req.Version {
	case 0x0101:
		keepAlive = !hasClose
	case 0x0100:
		keepAlive = hasKeepAlive
	}
	if keepAlive {
		p.req.Flags |= FlagKeepAlive
	}
	if hasUpgrade {
		p.req.Flags |= FlagHasUpgrade
	}
}

// validateExpect sets EXPECT_CONTINUE when Expect is exactly "100-continue".
func (p *Parser) validateExpect() {
	for _, h := range p.req.Headers {
		if h.NameID != HdrExpect {
			continue
		}
		if tokenEq(trimOWS(h.Value.Get(p.buf)), "100-continue") {
			p.req.Flags |= FlagExpectContinue
		}
	}
}
