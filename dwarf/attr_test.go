// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dwarf

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestAttributeRef4Encoding(t *testing.T) {
	ctx := UnitContext{Version: 4, AddressSize: 4, OffsetSize: 4}
	data := AttributeData{Class: ClassRef, U: 0x01234567}

	direct, err := EncodeAttribute(nil, binary.LittleEndian, FormRef4, data, ctx, false)
	if err != nil {
		t.Fatalf("direct encode: %v", err)
	}
	if want := []byte{0x67, 0x45, 0x23, 0x01}; !bytes.Equal(direct, want) {
		t.Fatalf("direct: got % x, want % x", direct, want)
	}

	indirect, err := EncodeAttribute(nil, binary.LittleEndian, FormRef4, data, ctx, true)
	if err != nil {
		t.Fatalf("indirect encode: %v", err)
	}
	if want := []byte{0x13, 0x67, 0x45, 0x23, 0x01}; !bytes.Equal(indirect, want) {
		t.Fatalf("indirect: got % x, want % x", indirect, want)
	}
}

func TestAttributeFormRoundTrip(t *testing.T) {
	ctx := UnitContext{Version: 4, AddressSize: 8, OffsetSize: 4}
	cases := []struct {
		form Form
		data AttributeData
	}{
		{FormAddr, AttributeData{Class: ClassAddress, U: 0x1122334455667788}},
		{FormData1, AttributeData{Class: ClassData1, U: 0x42}},
		{FormData2, AttributeData{Class: ClassData2, U: 0x4321}},
		{FormData4, AttributeData{Class: ClassData4, U: 0x12345678}},
		{FormData8, AttributeData{Class: ClassData8, U: 0x1122334455667788}},
		{FormUdata, AttributeData{Class: ClassUData, U: 300}},
		{FormSdata, AttributeData{Class: ClassSData, I: -300}},
		{FormFlag, AttributeData{Class: ClassFlag, Bool: true}},
		{FormFlagPresent, AttributeData{Class: ClassFlag, Bool: true}},
		{FormString, AttributeData{Class: ClassString, Bytes: []byte("hello")}},
		{FormStrp, AttributeData{Class: ClassStringOffset, U: 0x100}},
		{FormRef1, AttributeData{Class: ClassRef, U: 0x12}},
		{FormRef2, AttributeData{Class: ClassRef, U: 0x1234}},
		{FormRef4, AttributeData{Class: ClassRef, U: 0x01234567}},
		{FormRef8, AttributeData{Class: ClassRef, U: 0x1122334455667788}},
		{FormRefUdata, AttributeData{Class: ClassRef, U: 9000}},
		{FormRefSig8, AttributeData{Class: ClassRefSig, U: 0xdeadbeefcafebabe}},
		{FormSecOffset, AttributeData{Class: ClassSecOffset, U: 0x7f}},
		{FormExprloc, AttributeData{Class: ClassExprLoc, Bytes: []byte{0x03, 0x01, 0x02, 0x03}}},
		{FormBlock1, AttributeData{Class: ClassBlock, Bytes: []byte{1, 2, 3}}},
		{FormBlock2, AttributeData{Class: ClassBlock, Bytes: []byte{1, 2, 3}}},
		{FormBlock4, AttributeData{Class: ClassBlock, Bytes: []byte{1, 2, 3}}},
		{FormBlock, AttributeData{Class: ClassBlock, Bytes: []byte{1, 2, 3}}},
	}

	for _, c := range cases {
		for _, indirect := range []bool{false, true} {
			enc, err := EncodeAttribute(nil, binary.LittleEndian, c.form, c.data, ctx, indirect)
			if err != nil {
				t.Fatalf("form %#x indirect=%v: encode: %v", c.form, indirect, err)
			}

			decodeForm := c.form
			if indirect {
				decodeForm = FormIndirect
				prefix, n, err := ReadUint16(enc)
				if err != nil || n == 0 || Form(prefix) != c.form {
					t.Fatalf("form %#x: malformed indirect prefix (form=%#x n=%d err=%v)", c.form, prefix, n, err)
				}
			}

			got, n, err := DecodeAttribute(enc, binary.LittleEndian, decodeForm, ctx)
			if err != nil {
				t.Fatalf("form %#x indirect=%v: decode: %v", c.form, indirect, err)
			}
			if n != len(enc) {
				t.Errorf("form %#x indirect=%v: consumed %d, want %d", c.form, indirect, n, len(enc))
			}
			if got.Class != c.data.Class || got.U != c.data.U || got.I != c.data.I || got.Bool != c.data.Bool || !bytes.Equal(got.Bytes, c.data.Bytes) {
				t.Errorf("form %#x indirect=%v: got %+v, want %+v", c.form, indirect, got, c.data)
			}
		}
	}
}

func TestAttributeRefAddrDWARF2(t *testing.T) {
	ctx := UnitContext{Version: 2, AddressSize: 4, OffsetSize: 4}
	data := AttributeData{Class: ClassRefAddress, U: 0x10203040}

	enc, err := EncodeAttribute(nil, binary.LittleEndian, FormRefAddr, data, ctx, false)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(enc) != 4 {
		t.Fatalf("DWARF2 ref_addr should be address-sized (4 bytes), got %d", len(enc))
	}

	got, n, err := DecodeAttribute(enc, binary.LittleEndian, FormRefAddr, ctx)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if n != 4 || got.U != data.U {
		t.Fatalf("got %+v (n=%d), want %+v (n=4)", got, n, data)
	}
}

func TestAttributeRefAddrDWARF4(t *testing.T) {
	ctx := UnitContext{Version: 4, AddressSize: 8, OffsetSize: 4}
	data := AttributeData{Class: ClassRefAddress, U: 0x10203040}

	enc, err := EncodeAttribute(nil, binary.LittleEndian, FormRefAddr, data, ctx, false)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(enc) != 4 {
		t.Fatalf("DWARF4 ref_addr should be offset-sized (4 bytes here), got %d", len(enc))
	}
}

func TestStringValueFromStr(t *testing.T) {
	sections := &Sections{Str: []byte("foo\x00bar\x00")}
	d := AttributeData{Class: ClassStringOffset, U: 4}
	got, err := d.StringValue(sections)
	if err != nil {
		t.Fatalf("StringValue: %v", err)
	}
	if string(got) != "bar" {
		t.Fatalf("got %q, want %q", got, "bar")
	}
}

func TestStringValueUnterminated(t *testing.T) {
	sections := &Sections{Str: []byte("foo")}
	d := AttributeData{Class: ClassStringOffset, U: 0}
	_, err := d.StringValue(sections)
	de, ok := err.(*DecodeError)
	if !ok || de.Kind != KindInvalid {
		t.Fatalf("got err %v, want KindInvalid DecodeError", err)
	}
}
