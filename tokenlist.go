// Copyright 2026 The h11parse Authors.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package h11parse

import "github.com/intuitivelabs/bytescase"

// splitCommaTokens splits v (resolved against buf) on commas, trims
// OWS from each piece, and drops empty elements - the "#rule"
// list-extension grammar RFC 7230 §7 defines for Connection and
// Transfer-Encoding.
func splitCommaTokens(buf []byte, v Span) [][]byte {
	data := v.Get(buf)
	var out [][]byte
	start := 0
	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == ',' {
			tok := trimOWS(data[start:i])
			if len(tok) > 0 {
				out = append(out, tok)
			}
			start = i + 1
		}
	}
	return out
}

func trimOWS(b []byte) []byte {
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == '\t') {
		i++
	}
	j := len(b)
	for j > i && (b[j-1] == ' ' || b[j-1] == '\t') {
		j--
	}
	return b[i:j]
}

// tokenEq compares a raw token slice to an ASCII literal, case-insensitively.
func tokenEq(t []byte, s string) bool {
	if len(t) != len(s) {
		return false
	}
	return bytescase.CmpEq(t, []byte(s))
}
