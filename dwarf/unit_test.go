// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dwarf

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestUnitHeaderDWARF32Encoding(t *testing.T) {
	h := &UnitHeader{
		Version:      4,
		OffsetSize:   4,
		AbbrevOffset: 0x12,
		AddressSize:  4,
		Data:         []byte{0x01, 0x23, 0x45, 0x67},
	}
	got, err := WriteUnit(nil, binary.LittleEndian, h)
	if err != nil {
		t.Fatalf("WriteUnit: %v", err)
	}
	want := []byte{
		0x0b, 0x00, 0x00, 0x00, // initial length = 11
		0x04, 0x00, // version
		0x12, 0x00, 0x00, 0x00, // abbrev_offset
		0x04,                   // address_size
		0x01, 0x23, 0x45, 0x67, // body
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("got % x, want % x", got, want)
	}
}

func TestUnitIteratorRoundTrip(t *testing.T) {
	h := &UnitHeader{
		Version:      3,
		OffsetSize:   4,
		AbbrevOffset: 0,
		AddressSize:  8,
		Data:         []byte{0xaa, 0xbb, 0xcc},
	}
	enc, err := WriteUnit(nil, binary.LittleEndian, h)
	if err != nil {
		t.Fatalf("WriteUnit: %v", err)
	}

	sections := &Sections{Info: enc, Order: binary.LittleEndian}
	it := NewUnitIterator(sections, false)
	got, err := it.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if got == nil {
		t.Fatal("got nil unit")
	}
	if got.Version != h.Version || got.OffsetSize != h.OffsetSize || got.AbbrevOffset != h.AbbrevOffset || got.AddressSize != h.AddressSize {
		t.Errorf("header mismatch: got %+v, want %+v", *got, *h)
	}
	if !bytes.Equal(got.Data, h.Data) {
		t.Errorf("data mismatch: got % x, want % x", got.Data, h.Data)
	}

	next, err := it.Next()
	if err != nil {
		t.Fatalf("second Next: %v", err)
	}
	if next != nil {
		t.Errorf("expected end of section, got %+v", *next)
	}
}

func TestUnitIteratorBadVersion(t *testing.T) {
	h := &UnitHeader{Version: 99, OffsetSize: 4, AddressSize: 4}
	enc, err := WriteUnit(nil, binary.LittleEndian, h)
	if err != nil {
		t.Fatalf("WriteUnit: %v", err)
	}
	sections := &Sections{Info: enc, Order: binary.LittleEndian}
	it := NewUnitIterator(sections, false)
	_, err = it.Next()
	de, ok := err.(*DecodeError)
	if !ok || de.Kind != KindUnsupported {
		t.Fatalf("got err %v, want KindUnsupported DecodeError", err)
	}
}

func TestInitialLengthReservedRange(t *testing.T) {
	r := newReader("info", binary.LittleEndian, 0, []byte{0xf0, 0xff, 0xff, 0xff})
	r.initialLength()
	de, ok := r.err.(*DecodeError)
	if !ok || de.Kind != KindUnsupported {
		t.Fatalf("got err %v, want KindUnsupported DecodeError", r.err)
	}
}

func TestInitialLengthDWARF64(t *testing.T) {
	buf := make([]byte, 0, 16)
	buf = append(buf, 0xff, 0xff, 0xff, 0xff)
	var lenBytes [8]byte
	binary.LittleEndian.PutUint64(lenBytes[:], 4)
	buf = append(buf, lenBytes[:]...)
	buf = append(buf, 0xde, 0xad, 0xbe, 0xef)

	r := newReader("info", binary.LittleEndian, 0, buf)
	offsetSize, length := r.initialLength()
	if r.err != nil {
		t.Fatalf("initialLength: %v", r.err)
	}
	if offsetSize != 8 || length != 4 {
		t.Errorf("got offsetSize=%d length=%d, want 8, 4", offsetSize, length)
	}
}
