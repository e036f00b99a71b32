// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dwarf

import "bytes"

// Class discriminates the concrete kind of value an AttributeData
// holds. This is the Go analogue of the tagged union DWARF's
// attribute values naturally form: a struct with a discriminant
// rather than downcasting from a common base.
type Class int

const (
	ClassAddress Class = iota
	ClassBlock
	ClassData1
	ClassData2
	ClassData4
	ClassData8
	ClassUData
	ClassSData
	ClassFlag
	ClassString
	ClassStringOffset
	ClassRef
	ClassRefAddress
	ClassRefSig
	ClassSecOffset
	ClassExprLoc
)

// AttributeData is the decoded value of one DIE attribute. Exactly
// one of its fields is meaningful, selected by Class:
//
//	Address, Data1..Data8, UData, Ref, RefAddress, RefSig, SecOffset, StringOffset -> U
//	SData                                                                         -> I
//	Flag                                                                          -> Bool
//	Block, String, ExprLoc                                                        -> Bytes
//
// Bytes for Block, String and ExprLoc is a sub-slice of the
// Sections buffer the owning unit was decoded from; it must not
// outlive that Sections value.
type AttributeData struct {
	Class Class
	U     uint64
	I     int64
	Bool  bool
	Bytes []byte
}

// Attribute is one (name, value) pair of a DIE, in schema order.
type Attribute struct {
	At   Attr
	Data AttributeData
}

// UnitContext carries the header fields that affect attribute
// decoding: address and offset width, and the producing DWARF
// version (needed only to disambiguate ref_addr's width).
type UnitContext struct {
	Version     uint16
	AddressSize int
	OffsetSize  int
}

// decodeAttributeData decodes one attribute value of the given form
// from r. Indirect forms recurse; a handful of self-calls is simpler
// than a worklist, since indirect nesting in practice is at most one
// level deep.
func decodeAttributeData(r *reader, form Form, ctx UnitContext) AttributeData {
	switch form {
	case FormAddr:
		return AttributeData{Class: ClassAddress, U: r.addr(ctx.AddressSize)}

	case FormBlock1:
		n := int(r.u8())
		return AttributeData{Class: ClassBlock, Bytes: r.bytes(n)}
	case FormBlock2:
		n := int(r.u16())
		return AttributeData{Class: ClassBlock, Bytes: r.bytes(n)}
	case FormBlock4:
		n := int(r.u32())
		return AttributeData{Class: ClassBlock, Bytes: r.bytes(n)}
	case FormBlock:
		n := int(r.uleb())
		return AttributeData{Class: ClassBlock, Bytes: r.bytes(n)}

	case FormData1:
		return AttributeData{Class: ClassData1, U: uint64(r.u8())}
	case FormData2:
		return AttributeData{Class: ClassData2, U: uint64(r.u16())}
	case FormData4:
		return AttributeData{Class: ClassData4, U: uint64(r.u32())}
	case FormData8:
		return AttributeData{Class: ClassData8, U: r.u64()}

	case FormUdata:
		return AttributeData{Class: ClassUData, U: r.uleb()}
	case FormSdata:
		return AttributeData{Class: ClassSData, I: r.sleb()}

	case FormFlag:
		return AttributeData{Class: ClassFlag, Bool: r.u8() != 0}
	case FormFlagPresent:
		return AttributeData{Class: ClassFlag, Bool: true}

	case FormString:
		return AttributeData{Class: ClassString, Bytes: r.cstring()}
	case FormStrp:
		return AttributeData{Class: ClassStringOffset, U: r.offsetField(ctx.OffsetSize)}

	case FormRef1:
		return AttributeData{Class: ClassRef, U: uint64(r.u8())}
	case FormRef2:
		return AttributeData{Class: ClassRef, U: uint64(r.u16())}
	case FormRef4:
		return AttributeData{Class: ClassRef, U: uint64(r.u32())}
	case FormRef8:
		return AttributeData{Class: ClassRef, U: r.u64()}
	case FormRefUdata:
		return AttributeData{Class: ClassRef, U: r.uleb()}
	case FormRefAddr:
		// [DWARF2 7.5.4]: in DWARF2, ref_addr is address-sized;
		// DWARF3 and later widened it to offset-sized.
		if ctx.Version <= 2 {
			return AttributeData{Class: ClassRefAddress, U: r.addr(ctx.AddressSize)}
		}
		return AttributeData{Class: ClassRefAddress, U: r.offsetField(ctx.OffsetSize)}
	case FormRefSig8:
		return AttributeData{Class: ClassRefSig, U: r.u64()}

	case FormSecOffset:
		return AttributeData{Class: ClassSecOffset, U: r.offsetField(ctx.OffsetSize)}
	case FormExprloc:
		n := int(r.uleb())
		return AttributeData{Class: ClassExprLoc, Bytes: r.bytes(n)}

	case FormIndirect:
		inner := Form(r.uleb16())
		if r.err != nil {
			return AttributeData{}
		}
		if inner == FormIndirect {
			r.fail(KindInvalid, "indirect form recursing into itself")
			return AttributeData{}
		}
		return decodeAttributeData(r, inner, ctx)

	default:
		r.fail(KindUnsupported, "unknown attribute form %#x", uint16(form))
		return AttributeData{}
	}
}

// encodeAttributeData appends the encoding of data under the given
// form to w. If indirect is true, the form is written as a leading
// ULEB before the value, per the indirect-form protocol.
func encodeAttributeData(w *writer, form Form, data AttributeData, ctx UnitContext, indirect bool) {
	if indirect {
		w.uleb16(uint16(form))
	}

	mismatch := func() {
		w.fail(KindInvalid, "value class does not match form")
	}

	switch form {
	case FormAddr:
		if data.Class != ClassAddress {
			mismatch()
			return
		}
		w.addr(ctx.AddressSize, data.U)

	case FormBlock1:
		if data.Class != ClassBlock {
			mismatch()
			return
		}
		w.u8(uint8(len(data.Bytes)))
		w.bytes(data.Bytes)
	case FormBlock2:
		if data.Class != ClassBlock {
			mismatch()
			return
		}
		w.u16(uint16(len(data.Bytes)))
		w.bytes(data.Bytes)
	case FormBlock4:
		if data.Class != ClassBlock {
			mismatch()
			return
		}
		w.u32(uint32(len(data.Bytes)))
		w.bytes(data.Bytes)
	case FormBlock:
		if data.Class != ClassBlock {
			mismatch()
			return
		}
		w.uleb(uint64(len(data.Bytes)))
		w.bytes(data.Bytes)

	case FormData1:
		if data.Class != ClassData1 {
			mismatch()
			return
		}
		w.u8(uint8(data.U))
	case FormData2:
		if data.Class != ClassData2 {
			mismatch()
			return
		}
		w.u16(uint16(data.U))
	case FormData4:
		if data.Class != ClassData4 {
			mismatch()
			return
		}
		w.u32(uint32(data.U))
	case FormData8:
		if data.Class != ClassData8 {
			mismatch()
			return
		}
		w.u64(data.U)

	case FormUdata:
		if data.Class != ClassUData {
			mismatch()
			return
		}
		w.uleb(data.U)
	case FormSdata:
		if data.Class != ClassSData {
			mismatch()
			return
		}
		w.sleb(data.I)

	case FormFlag:
		if data.Class != ClassFlag {
			mismatch()
			return
		}
		if data.Bool {
			w.u8(1)
		} else {
			w.u8(0)
		}
	case FormFlagPresent:
		if data.Class != ClassFlag || !data.Bool {
			mismatch()
			return
		}
		// No bytes: presence of the attribute is the value.

	case FormString:
		if data.Class != ClassString {
			mismatch()
			return
		}
		w.cstring(data.Bytes)
	case FormStrp:
		if data.Class != ClassStringOffset {
			mismatch()
			return
		}
		w.offsetField(ctx.OffsetSize, data.U)

	case FormRef1:
		if data.Class != ClassRef {
			mismatch()
			return
		}
		w.u8(uint8(data.U))
	case FormRef2:
		if data.Class != ClassRef {
			mismatch()
			return
		}
		w.u16(uint16(data.U))
	case FormRef4:
		if data.Class != ClassRef {
			mismatch()
			return
		}
		w.u32(uint32(data.U))
	case FormRef8:
		if data.Class != ClassRef {
			mismatch()
			return
		}
		w.u64(data.U)
	case FormRefUdata:
		if data.Class != ClassRef {
			mismatch()
			return
		}
		w.uleb(data.U)
	case FormRefAddr:
		if data.Class != ClassRefAddress {
			mismatch()
			return
		}
		if ctx.Version <= 2 {
			w.addr(ctx.AddressSize, data.U)
		} else {
			w.offsetField(ctx.OffsetSize, data.U)
		}
	case FormRefSig8:
		if data.Class != ClassRefSig {
			mismatch()
			return
		}
		w.u64(data.U)

	case FormSecOffset:
		if data.Class != ClassSecOffset {
			mismatch()
			return
		}
		w.offsetField(ctx.OffsetSize, data.U)
	case FormExprloc:
		if data.Class != ClassExprLoc {
			mismatch()
			return
		}
		w.uleb(uint64(len(data.Bytes)))
		w.bytes(data.Bytes)

	default:
		w.fail(KindUnsupported, "unknown attribute form")
	}
}

// StringValue resolves an AttributeData of class String or
// StringOffset to its string bytes, scanning sections.Str for a
// StringOffset. It returns KindInvalid if a StringOffset is out of
// range or unterminated.
func (d AttributeData) StringValue(sections *Sections) ([]byte, error) {
	switch d.Class {
	case ClassString:
		return d.Bytes, nil
	case ClassStringOffset:
		off := d.U
		if off > uint64(len(sections.Str)) {
			return nil, &DecodeError{Kind: KindInvalid, Section: "str", Offset: int(off), Message: "string offset out of range"}
		}
		rest := sections.Str[off:]
		i := bytes.IndexByte(rest, 0)
		if i < 0 {
			return nil, &DecodeError{Kind: KindInvalid, Section: "str", Offset: int(off), Message: "unterminated string"}
		}
		return rest[:i], nil
	default:
		return nil, &DecodeError{Kind: KindInvalid, Section: "str", Offset: 0, Message: "attribute is not a string"}
	}
}
