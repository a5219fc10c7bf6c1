// Copyright 2026 The h11parse Authors.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package h11parse

// UpgradeProto tags a recognized Upgrade protocol token, per
// https://www.iana.org/assignments/http-upgrade-tokens/http-upgrade-tokens.xhtml
type UpgradeProto uint8

const (
	UpgradeOther UpgradeProto = iota
	UpgradeWebSocket
	UpgradeHTTP2
)

// ResolveUpgradeProto maps a raw protocol token to its UpgradeProto tag.
func ResolveUpgradeProto(tok []byte) UpgradeProto {
	switch {
	case tokenEq(tok, "websocket"):
		return UpgradeWebSocket
	case tokenEq(tok, "h2c"), tokenEq(tok, "http/2.0"):
		return UpgradeHTTP2
	default:
		return UpgradeOther
	}
}

// UpgradeTokens splits an Upgrade header value into its individual
// protocol tokens (RFC 7230 §6.7's comma-separated protocol list) and
// resolves each to an UpgradeProto tag. Returns nil if no Upgrade
// header is present.
func UpgradeTokens(buf []byte, req *Request) []UpgradeProto {
	h := req.KnownHeader(HdrUpgrade)
	if h == nil {
		return nil
	}
	toks := splitCommaTokens(buf, h.Value)
	out := make([]UpgradeProto, 0, len(toks))
	for _, t := range toks {
		out = append(out, ResolveUpgradeProto(t))
	}
	return out
}
