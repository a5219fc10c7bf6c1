// Copyright 2026 The h11parse Authors.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package h11parse

import "math"

// Flags packs the parser's behavior switches (spec.md §3 "Configuration").
type Flags uint32

const (
	StrictCRLF Flags = 1 << iota
	RejectObsFold
	AllowObsText
	AllowLeadingCRLF
	TolerateSpaces
	RejectTECLConflict
)

// Config holds the tunable caps and behavior flags for a Parser.
// Mirrors h11_config_t from the original C core.
type Config struct {
	MaxBodySize       uint64
	MaxRequestLineLen uint32
	MaxHeaderLineLen  uint32
	MaxHeadersSize    uint32
	MaxHeaderCount    uint32
	MaxChunkExtLen    uint32
	Flags             Flags
}

// DefaultConfig returns the default configuration: unlimited body size,
// 8K request-line and header-line caps, 64K header-section cap, 100
// header cap, 1K chunk-extension cap, and every behavior flag enabled
// except TolerateSpaces.
func DefaultConfig() Config {
	return Config{
		MaxBodySize:       math.MaxUint64,
		MaxRequestLineLen: 8192,
		MaxHeaderLineLen:  8192,
		MaxHeadersSize:    65536,
		MaxHeaderCount:    100,
		MaxChunkExtLen:    1024,
		Flags: StrictCRLF | RejectObsFold | AllowObsText |
			AllowLeadingCRLF | RejectTECLConflict,
	}
}

func (c Config) has(f Flags) bool { return c.Flags&f != 0 }
