// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dwarf

import "encoding/binary"

// UnitHeader is the set of fields common to every compilation unit
// and type unit, plus the two extra fields a type unit carries.
// Rather than a CompilationUnit/TypeUnit type hierarchy, this package
// uses one flat struct with an IsTypeUnit discriminant — the two
// headers differ by exactly two trailing fields, not enough to
// justify an interface.
type UnitHeader struct {
	Offset       int    // byte offset of this unit within its section
	Version      uint16 // 2, 3 or 4
	AddressSize  int    // 4 or 8
	OffsetSize   int    // 4 (DWARF32) or 8 (DWARF64)
	AbbrevOffset uint64 // index into .debug_abbrev

	IsTypeUnit    bool
	TypeSignature uint64 // type units only
	TypeOffset    uint64 // type units only, offset-sized

	// Data is the unit's DIE body: the bytes following the header,
	// within the unit's declared length. It is a sub-slice of the
	// section buffer the unit was read from.
	Data []byte
}

// UnitIterator walks the tiled sequence of units in .debug_info or
// .debug_types, in section byte order.
type UnitIterator struct {
	section   string
	order     binary.ByteOrder
	buf       []byte
	off       int
	typeUnits bool
}

// NewUnitIterator returns an iterator over the compilation units in
// sections.Info, or, if types is true, the type units in
// sections.Types.
func NewUnitIterator(sections *Sections, types bool) *UnitIterator {
	if types {
		return &UnitIterator{section: "types", order: sections.order(), buf: sections.Types, typeUnits: true}
	}
	return &UnitIterator{section: "info", order: sections.order(), buf: sections.Info}
}

// Next decodes and returns the next unit header, or (nil, nil) when
// the section is exhausted.
func (it *UnitIterator) Next() (*UnitHeader, error) {
	if len(it.buf) == 0 {
		return nil, nil
	}

	unitOff := it.off
	r := newReader(it.section, it.order, it.off, it.buf)
	offsetSize, length := r.initialLength()
	if r.err != nil {
		return nil, r.err
	}

	body := r.buf[:length]
	rest := r.buf[length:]

	h := &UnitHeader{Offset: unitOff, OffsetSize: offsetSize, IsTypeUnit: it.typeUnits}

	br := newReader(it.section, it.order, r.off, body)
	h.Version = br.u16()
	if br.err == nil && (h.Version < 2 || h.Version > 4) {
		br.fail(KindUnsupported, "unit version %d outside supported range 2..4", h.Version)
	}
	h.AbbrevOffset = br.offsetField(offsetSize)
	h.AddressSize = int(br.u8())
	if br.err == nil && h.AddressSize != 4 && h.AddressSize != 8 {
		br.fail(KindUnsupported, "address size %d", h.AddressSize)
	}
	if it.typeUnits {
		h.TypeSignature = br.u64()
		h.TypeOffset = br.offsetField(offsetSize)
	}
	if br.err != nil {
		return nil, br.err
	}
	h.Data = br.buf

	it.off = r.off + length
	it.buf = rest
	return h, nil
}

// WriteUnit appends the encoding of h, including its initial length
// and header fields, followed by h.Data, to dst.
func WriteUnit(dst []byte, order binary.ByteOrder, h *UnitHeader) ([]byte, error) {
	hw := newWriter(order)
	hw.u16(h.Version)
	hw.offsetField(h.OffsetSize, h.AbbrevOffset)
	hw.u8(uint8(h.AddressSize))
	if h.IsTypeUnit {
		hw.u64(h.TypeSignature)
		hw.offsetField(h.OffsetSize, h.TypeOffset)
	}
	hw.bytes(h.Data)
	if hw.err != nil {
		return nil, hw.err
	}

	w := newWriter(order)
	w.initialLength(h.OffsetSize, uint64(len(hw.dst)))
	w.bytes(hw.dst)
	if w.err != nil {
		return nil, w.err
	}
	return append(dst, w.dst...), nil
}

func (h *UnitHeader) context() UnitContext {
	return UnitContext{Version: h.Version, AddressSize: h.AddressSize, OffsetSize: h.OffsetSize}
}
