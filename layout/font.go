// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package layout

import (
	"bytes"
	"sync/atomic"

	"github.com/go-text/typesetting/font"
)

// fontIDCounter allocates stable cache-key identifiers for parsed fonts.
var fontIDCounter atomic.Uint64

// Font is a parsed font usable for shaping.
//
// The underlying parsed font is read-only and safe for concurrent use;
// per-call font.Face instances are created by the engine because Face is
// NOT safe for concurrent use.
type Font struct {
	parsed *font.Font
	id     uint64
}

// ParseFont parses TTF/OTF font data.
// The data is parsed once; the resulting Font may be shared freely.
func ParseFont(data []byte) (*Font, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &Font{
		parsed: face.Font,
		id:     fontIDCounter.Add(1),
	}, nil
}
