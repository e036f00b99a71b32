// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dwarf

import "encoding/binary"

// Sections is the raw byte content of the DWARF sections this package
// understands, as extracted from an object file by an external
// loader (see package elfsections). A missing section is the empty
// slice. Sections owns these buffers; every parsed view in this
// package borrows from them and is valid only as long as the Sections
// value that produced it is reachable.
type Sections struct {
	Abbrev []byte // .debug_abbrev
	Info   []byte // .debug_info
	Line   []byte // .debug_line
	Str    []byte // .debug_str
	Types  []byte // .debug_types

	// Order is the byte order of the multi-byte integers in every
	// section above.
	Order binary.ByteOrder
}

func (s *Sections) order() binary.ByteOrder {
	if s.Order == nil {
		return binary.LittleEndian
	}
	return s.Order
}

// ByteOrder returns the byte order to use for s, defaulting to
// little-endian if s.Order is unset.
func (s *Sections) ByteOrder() binary.ByteOrder {
	return s.order()
}
