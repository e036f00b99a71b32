// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dwarf

import (
	"errors"
	"fmt"
)

// errOverflow and errEOF are the low-level sentinels produced by the
// LEB128 and primitive readers; the reader/cursor layer wraps them in
// a DecodeError with section and offset context before they reach a
// caller.
var (
	errOverflow = errors.New("leb128: value overflows target width")
	errEOF      = errors.New("unexpected end of buffer")
)

//go:generate stringer -type=Kind

// Kind classifies what went wrong while decoding or encoding DWARF
// data. It lets callers distinguish error categories without string
// matching.
type Kind int

const (
	KindIO Kind = iota
	KindEOF
	KindInvalid
	KindUnsupported
	KindOverflow
)

// DecodeError describes a failure to decode a DWARF structure. Section
// names the DWARF section being read (e.g. "abbrev", "info", "line");
// Offset is the byte offset within that section at which the failure
// was detected.
type DecodeError struct {
	Kind    Kind
	Section string
	Offset  int
	Message string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("dwarf: decoding %s at offset %#x: %s", e.Section, e.Offset, e.Message)
}

// EncodeError describes a failure to encode a DWARF structure.
type EncodeError struct {
	Kind    Kind
	Message string
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("dwarf: encoding: %s", e.Message)
}
