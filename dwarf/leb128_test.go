// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dwarf

import (
	"bytes"
	"testing"
)

func TestLEB128Boundary(t *testing.T) {
	in := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}
	v, n, err := ReadUint64(in)
	if err != nil {
		t.Fatalf("ReadUint64: %v", err)
	}
	if v != 0x7fffffffffffffff {
		t.Errorf("got %#x, want 0x7fffffffffffffff", v)
	}
	if n != len(in) {
		t.Errorf("consumed %d bytes, want %d", n, len(in))
	}

	in2 := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}
	v2, n2, err := ReadUint64(in2)
	if err != nil {
		t.Fatalf("ReadUint64: %v", err)
	}
	if v2 != 0xffffffffffffffff {
		t.Errorf("got %#x, want 0xffffffffffffffff", v2)
	}
	if n2 != len(in2) {
		t.Errorf("consumed %d bytes, want %d", n2, len(in2))
	}
}

func TestLEB128Overflow(t *testing.T) {
	in := append(bytes.Repeat([]byte{0x80}, 10), 0xff)
	_, _, err := ReadUint64(in)
	if err != errOverflow {
		t.Fatalf("got err %v, want errOverflow", err)
	}
}

func TestLEB128RoundTripUint64(t *testing.T) {
	cases := []uint64{0, 1, 0x7f, 0x80, 0xffff, 0x7fffffffffffffff, 0xffffffffffffffff}
	for _, x := range cases {
		enc := AppendUint64(nil, x)
		got, n, err := ReadUint64(enc)
		if err != nil {
			t.Fatalf("x=%#x: %v", x, err)
		}
		if n != len(enc) || got != x {
			t.Errorf("x=%#x: round-trip got %#x (n=%d), want %#x (n=%d)", x, got, n, x, len(enc))
		}
	}
}

func TestLEB128RoundTripInt64(t *testing.T) {
	cases := []int64{0, 1, -1, 63, -64, 64, -65, 1 << 40, -(1 << 40)}
	for _, x := range cases {
		enc := AppendInt64(nil, x)
		got, n, err := ReadInt64(enc)
		if err != nil {
			t.Fatalf("x=%d: %v", x, err)
		}
		if n != len(enc) || got != x {
			t.Errorf("x=%d: round-trip got %d (n=%d), want %d (n=%d)", x, got, n, x, len(enc))
		}
	}
}

func TestLEB128RoundTripUint16(t *testing.T) {
	cases := []uint16{0, 1, 0x7f, 0x80, 0x1234, 0xffff}
	for _, x := range cases {
		enc := AppendUint16(nil, x)
		got, n, err := ReadUint16(enc)
		if err != nil {
			t.Fatalf("x=%#x: %v", x, err)
		}
		if n != len(enc) || got != x {
			t.Errorf("x=%#x: round-trip got %#x (n=%d), want %#x (n=%d)", x, got, n, x, len(enc))
		}
	}
}

func TestLEB128Uint16Overflow(t *testing.T) {
	// Three continuation bytes push the shift ceiling past 16 before a
	// terminal byte is ever reached.
	_, _, err := ReadUint16([]byte{0x80, 0x80, 0x80, 0x01})
	if err != errOverflow {
		t.Fatalf("got err %v, want errOverflow", err)
	}
}

func TestLEB128EOF(t *testing.T) {
	_, _, err := ReadUint64([]byte{0x80, 0x80})
	if err != errEOF {
		t.Fatalf("got err %v, want errEOF", err)
	}
}
