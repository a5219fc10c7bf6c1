// Copyright 2026 The h11parse Authors.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

// Command h11lint reads a raw HTTP/1.1 request from a file (or
// stdin), feeds it through a Parser, and prints the resulting request
// head as JSON. It exists for ad hoc inspection during development;
// the parser core it drives has no dependency on it.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/intuitivelabs/h11parse"
)

type headerView struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Known bool   `json:"known"`
}

type requestView struct {
	Method        string       `json:"method"`
	Target        string       `json:"target"`
	TargetForm    string       `json:"target_form"`
	Version       string       `json:"version"`
	BodyType      string       `json:"body_type"`
	ContentLength uint64       `json:"content_length,omitempty"`
	Headers       []headerView `json:"headers"`
	State         string       `json:"state"`
}

func bodyTypeName(b h11parse.BodyType) string {
	switch b {
	case h11parse.BodyContentLength:
		return "content-length"
	case h11parse.BodyChunked:
		return "chunked"
	default:
		return "none"
	}
}

func versionName(v uint16) string {
	return fmt.Sprintf("HTTP/%d.%d", v>>8, v&0xff)
}

func main() {
	flag.Parse()
	var data []byte
	var err error
	if path := flag.Arg(0); path != "" {
		data, err = os.ReadFile(path)
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "h11lint:", err)
		os.Exit(1)
	}

	p := h11parse.NewParser(h11parse.DefaultConfig())
	_, status := p.Parse(data)
	if status == h11parse.ErrNeedMoreData {
		fmt.Fprintln(os.Stderr, "h11lint: incomplete request head")
		os.Exit(1)
	}
	if status.Fatal() {
		fmt.Fprintf(os.Stderr, "h11lint: %s: %s (offset %d)\n", status.Name(), status.Message(), p.ErrOffset())
		os.Exit(1)
	}

	req := p.Request()
	base := p.Buf()
	view := requestView{
		Method:        string(req.Method.Get(base)),
		Target:        string(req.Target.Get(base)),
		TargetForm:    req.TargetForm.String(),
		Version:       versionName(req.Version),
		BodyType:      bodyTypeName(req.BodyType),
		ContentLength: req.ContentLength,
		State:         p.State().String(),
	}
	for _, h := range req.Headers {
		view.Headers = append(view.Headers, headerView{
			Name:  string(h.Name.Get(base)),
			Value: string(h.Value.Get(base)),
			Known: h.Flags&h11parse.HeaderKnownName != 0,
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(view); err != nil {
		fmt.Fprintln(os.Stderr, "h11lint:", err)
		os.Exit(1)
	}
}
