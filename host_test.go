// Copyright 2026 The h11parse Authors.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package h11parse

import "testing"

func TestValidHostToken(t *testing.T) {
	cases := []string{
		"example.com",
		"example.com:8080",
		"127.0.0.1",
		"127.0.0.1:443",
		"[::1]",
		"[::1]:8080",
		"xn--caf-dma.example",
		"host%20name.example",
	}
	for _, c := range cases {
		if !validHostToken([]byte(c)) {
			t.Errorf("validHostToken(%q) = false, want true", c)
		}
	}
}

func TestInvalidHostToken(t *testing.T) {
	cases := []string{
		"",
		"host name",
		"host:abc",
		"[::1",
		"host%",
		"host%2",
		"host%zz",
	}
	for _, c := range cases {
		if validHostToken([]byte(c)) {
			t.Errorf("validHostToken(%q) = true, want false", c)
		}
	}
}
