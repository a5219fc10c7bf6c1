// Copyright 2026 The h11parse Authors.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package h11parse

import "github.com/intuitivelabs/bytescase"

// KnownHeader is the ordinal of a header recognized for semantic
// interpretation (spec.md §3 "Header record"). HdrNone is the
// sentinel for headers outside this closed set.
type KnownHeader uint8

const (
	HdrHost KnownHeader = iota
	HdrContentLength
	HdrTransferEncoding
	HdrConnection
	HdrExpect
	HdrUpgrade
	knownHeaderCount
)

// HdrNone is the sentinel KnownHeader value for unrecognized headers.
const HdrNone KnownHeader = 0xFF

var knownHeaderNames = [knownHeaderCount][]byte{
	HdrHost:             []byte("host"),
	HdrContentLength:    []byte("content-length"),
	HdrTransferEncoding: []byte("transfer-encoding"),
	HdrConnection:       []byte("connection"),
	HdrExpect:           []byte("expect"),
	HdrUpgrade:          []byte("upgrade"),
}

// lookupKnownHeader resolves a header name (no surrounding whitespace)
// to its KnownHeader ordinal, or HdrNone if it isn't one of the six
// headers this package interprets semantically. Linear scan over six
// entries, grounded on the teacher's GetHdrType but without the
// hash-bucket machinery: the known set here is fixed and tiny, so a
// scan is simpler and just as fast.
func lookupKnownHeader(name []byte) KnownHeader {
	for i, n := range knownHeaderNames {
		if bytescase.CmpEq(name, n) {
			return KnownHeader(i)
		}
	}
	return HdrNone
}

// HeaderFlags carries per-header bits (spec.md §3 "Header record").
type HeaderFlags uint8

const (
	HeaderKnownName HeaderFlags = 1 << iota
)

// Header is one parsed header field: name/value spans, the known-header
// ordinal (or HdrNone) and per-header flags.
type Header struct {
	Name   Span
	Value  Span
	NameID KnownHeader
	Flags  HeaderFlags
}

// FindHeader performs a linear, case-insensitive scan for the first
// header in req.Headers whose name equals name. Returns -1 if absent.
// Matches the §6 API surface (find_header in the C original); prefer
// Request.KnownHeader for the six recognized headers, which is O(1).
func FindHeader(req *Request, base []byte, name string) int {
	for i := range req.Headers {
		if req.Headers[i].Name.EqCaseFold(base, name) {
			return i
		}
	}
	return -1
}
