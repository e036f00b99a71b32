// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dwarf

import "encoding/binary"

// DecodeAttribute decodes one attribute value of the given form from
// the front of buf, returning the value and the number of bytes
// consumed. If form is FormIndirect, the actual form is read as a
// leading ULEB128 before the value.
func DecodeAttribute(buf []byte, order binary.ByteOrder, form Form, ctx UnitContext) (AttributeData, int, error) {
	r := newReader("info", order, 0, buf)
	data := decodeAttributeData(&r, form, ctx)
	if r.err != nil {
		return AttributeData{}, 0, r.err
	}
	return data, r.off, nil
}

// EncodeAttribute appends the encoding of data under form to dst. If
// indirect is true, the form is written as a leading ULEB128 before
// the value.
func EncodeAttribute(dst []byte, order binary.ByteOrder, form Form, data AttributeData, ctx UnitContext, indirect bool) ([]byte, error) {
	w := writer{dst: dst, order: order}
	encodeAttributeData(&w, form, data, ctx, indirect)
	if w.err != nil {
		return nil, w.err
	}
	return w.dst, nil
}

// EncodeDIE appends the encoding of d to dst, validated against
// abbrev.
func EncodeDIE(dst []byte, order binary.ByteOrder, ctx UnitContext, abbrev Abbrev, d *DIE) ([]byte, error) {
	w := writer{dst: dst, order: order}
	encodeDIE(&w, ctx, abbrev, d)
	if w.err != nil {
		return nil, w.err
	}
	return w.dst, nil
}
