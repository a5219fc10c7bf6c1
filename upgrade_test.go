// Copyright 2026 The h11parse Authors.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package h11parse

import "testing"

func TestUpgradeTokensWebSocket(t *testing.T) {
	raw := []byte("GET /chat HTTP/1.1\r\nHost: h\r\nConnection: upgrade\r\nUpgrade: websocket\r\n\r\n")
	p := NewParser(DefaultConfig())
	_, err := p.Parse(raw)
	if err.Fatal() {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Request().Flags&FlagHasUpgrade == 0 {
		t.Fatal("HAS_UPGRADE not set")
	}
	protos := UpgradeTokens(raw, p.Request())
	if len(protos) != 1 || protos[0] != UpgradeWebSocket {
		t.Errorf("protos = %v, want [UpgradeWebSocket]", protos)
	}
}

func TestUpgradeTokensNoHeader(t *testing.T) {
	raw := []byte("GET / HTTP/1.1\r\nHost: h\r\n\r\n")
	p := NewParser(DefaultConfig())
	p.Parse(raw)
	if got := UpgradeTokens(raw, p.Request()); got != nil {
		t.Errorf("UpgradeTokens = %v, want nil", got)
	}
}

func TestResolveUpgradeProtoUnknown(t *testing.T) {
	if ResolveUpgradeProto([]byte("spdy/3.1")) != UpgradeOther {
		t.Error("unexpected protocol classified as known")
	}
}
