// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dwarf

import (
	"bytes"
	"encoding/binary"
	"reflect"
	"testing"
)

func TestAbbrevEncoding(t *testing.T) {
	vec := AbbrevVec{
		{Tag: TagNamespace, Children: true, Attributes: []AbbrevAttribute{{At: AttrName, Form: FormStrp}}},
	}
	vec.Assign()

	got, err := vec.WriteTo(nil)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	want := []byte{0x01, 0x39, 0x01, 0x03, 0x0e, 0x00, 0x00, 0x00}
	if !bytes.Equal(got, want) {
		t.Fatalf("got % x, want % x", got, want)
	}
}

func TestAbbrevRoundTrip(t *testing.T) {
	vec := AbbrevVec{
		{Tag: TagSubprogram, Children: true, Attributes: []AbbrevAttribute{
			{At: AttrName, Form: FormStrp},
			{At: AttrLowpc, Form: FormAddr},
			{At: AttrHighpc, Form: FormData8},
		}},
		{Tag: TagBaseType, Children: false, Attributes: []AbbrevAttribute{
			{At: AttrName, Form: FormString},
			{At: AttrByteSize, Form: FormData1},
		}},
	}
	vec.Assign()

	buf, err := vec.WriteTo(nil)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	table, err := ReadAbbrevTable(binary.LittleEndian, 0, buf)
	if err != nil {
		t.Fatalf("ReadAbbrevTable: %v", err)
	}

	if len(table) != len(vec) {
		t.Fatalf("got %d abbrevs, want %d", len(table), len(vec))
	}
	for _, want := range vec {
		got, ok := table[want.Code]
		if !ok {
			t.Fatalf("missing abbrev code %d", want.Code)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("code %d: got %+v, want %+v", want.Code, got, want)
		}
	}
}

func TestAbbrevDuplicateCode(t *testing.T) {
	buf := []byte{
		0x01, 0x01, 0x00, 0x00, 0x00, // code 1, TagArrayType, no children, no attrs
		0x01, 0x02, 0x00, 0x00, 0x00, // code 1 again
		0x00,
	}
	_, err := ReadAbbrevTable(binary.LittleEndian, 0, buf)
	de, ok := err.(*DecodeError)
	if !ok || de.Kind != KindInvalid {
		t.Fatalf("got err %v, want KindInvalid DecodeError", err)
	}
}
