// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dwarf

import "encoding/binary"

// AbbrevAttribute is one (attribute, form) pair in an abbreviation's
// schema.
type AbbrevAttribute struct {
	At   Attr
	Form Form
}

// Abbrev is one entry of an abbreviation table: the schema shared by
// every DIE that references it by Code.
type Abbrev struct {
	Code       uint64
	Tag        Tag
	Children   bool
	Attributes []AbbrevAttribute
}

// AbbrevTable maps abbreviation code to Abbrev, as decoded from one
// offset within .debug_abbrev. Codes are unique within a table.
type AbbrevTable map[uint64]Abbrev

// ReadAbbrevTable decodes one abbreviation table starting at the
// given offset within buf (normally sections.Abbrev, with off a unit
// header's AbbrevOffset). It reads until a null (code 0) abbreviation
// terminates the table.
func ReadAbbrevTable(order binary.ByteOrder, off int, buf []byte) (AbbrevTable, error) {
	if off < 0 || off > len(buf) {
		return nil, &DecodeError{Kind: KindInvalid, Section: "abbrev", Offset: off, Message: "abbrev offset beyond section"}
	}
	r := newReader("abbrev", order, off, buf[off:])
	table := make(AbbrevTable)
	for {
		code := r.uleb()
		if r.err != nil {
			return nil, r.err
		}
		if code == 0 {
			break
		}

		tag := Tag(r.uleb16())
		childrenByte := r.u8()
		if r.err != nil {
			return nil, r.err
		}
		var children bool
		switch Children(childrenByte) {
		case ChildrenNo:
			children = false
		case ChildrenYes:
			children = true
		default:
			r.fail(KindInvalid, "bad children flag %#x", childrenByte)
			return nil, r.err
		}

		var attrs []AbbrevAttribute
		for {
			at := r.uleb16()
			form := r.uleb16()
			if r.err != nil {
				return nil, r.err
			}
			if at == 0 && form == 0 {
				break
			}
			attrs = append(attrs, AbbrevAttribute{At: Attr(at), Form: Form(form)})
		}

		if _, dup := table[code]; dup {
			r.fail(KindInvalid, "duplicate abbreviation code %d", code)
			return nil, r.err
		}
		table[code] = Abbrev{Code: code, Tag: tag, Children: children, Attributes: attrs}
	}
	return table, nil
}

// AbbrevVec is an ordered list of abbreviations, used on the write
// side where encoding order (and therefore code assignment) matters.
type AbbrevVec []Abbrev

// Assign fills in Code for each abbreviation in order, starting at 1,
// overwriting whatever Code each entry previously held.
func (v AbbrevVec) Assign() {
	for i := range v {
		v[i].Code = uint64(i + 1)
	}
}

// WriteTo appends the encoding of v, including its null terminator,
// to dst.
func (v AbbrevVec) WriteTo(dst []byte) ([]byte, error) {
	w := writer{dst: dst}
	for _, a := range v {
		writeAbbrev(&w, a)
	}
	writeAbbrevNull(&w)
	return w.dst, w.err
}

func writeAbbrev(w *writer, a Abbrev) {
	w.uleb(a.Code)
	if a.Code == 0 {
		return
	}
	w.uleb16(uint16(a.Tag))
	if a.Children {
		w.u8(uint8(ChildrenYes))
	} else {
		w.u8(uint8(ChildrenNo))
	}
	for _, attr := range a.Attributes {
		w.uleb16(uint16(attr.At))
		w.uleb16(uint16(attr.Form))
	}
	w.uleb16(0)
	w.uleb16(0)
}

func writeAbbrevNull(w *writer) {
	w.uleb(0)
}
