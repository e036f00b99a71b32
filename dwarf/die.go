// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dwarf

import "encoding/binary"

// DIE is one debugging information entry. A DIE with Code == 0 is the
// null DIE, which terminates a sibling chain at the current tree
// depth; it carries no Tag, Children or Attributes.
type DIE struct {
	Offset     int
	Code       uint64
	Tag        Tag
	Children   bool
	Attributes []Attribute
}

// IsNull reports whether d is a null (terminator) DIE.
func (d *DIE) IsNull() bool {
	return d.Code == 0
}

// Val returns the value of the first attribute with the given name,
// or (AttributeData{}, false) if d has no such attribute.
func (d *DIE) Val(at Attr) (AttributeData, bool) {
	for _, a := range d.Attributes {
		if a.At == at {
			return a.Data, true
		}
	}
	return AttributeData{}, false
}

// Cursor is a prefix-order iterator over one unit's DIE body. It owns
// a single reusable DIE buffer: the value returned by Next is
// invalidated by the next call to Next or NextSibling, the same
// aliasing rule debug/dwarf's own Reader documents.
type Cursor struct {
	unitOffset int
	dataOffset int // absolute offset of unit.Data[0] in its section
	dataEnd    int // absolute offset just past unit.Data
	data       []byte
	ctx        UnitContext
	abbrevs    AbbrevTable

	r     reader
	entry DIE
}

// NewCursor returns a cursor over h's DIE body, resolving abbreviation
// codes against abbrevs (normally the table at h.AbbrevOffset).
func NewCursor(h *UnitHeader, abbrevs AbbrevTable, order binary.ByteOrder) *Cursor {
	dataOff := h.dataOffset()
	return &Cursor{
		unitOffset: h.Offset,
		dataOffset: dataOff,
		dataEnd:    dataOff + len(h.Data),
		data:       h.Data,
		ctx:        h.context(),
		abbrevs:    abbrevs,
		r:          newReader("info", order, dataOff, h.Data),
	}
}

// dataOffset computes the absolute section offset of the first byte
// of h.Data, from the fixed-size fields that precede it.
func (h *UnitHeader) dataOffset() int {
	initialLengthSize := 4
	if h.OffsetSize == 8 {
		initialLengthSize = 12
	}
	headerSize := 2 + h.OffsetSize + 1 // version + abbrev_offset + address_size
	if h.IsTypeUnit {
		headerSize += 8 + h.OffsetSize // type_signature + type_offset
	}
	return h.Offset + initialLengthSize + headerSize
}

// Next decodes the next DIE and returns a pointer to the cursor's
// internal entry, or (nil, nil) once the unit's DIE body is
// exhausted.
func (c *Cursor) Next() (*DIE, error) {
	if c.r.err != nil {
		return nil, c.r.err
	}
	if len(c.r.buf) == 0 {
		return nil, nil
	}

	entryOff := c.r.off
	code := c.r.uleb()
	if c.r.err != nil {
		return nil, c.r.err
	}

	c.entry.Offset = entryOff
	c.entry.Code = code
	c.entry.Attributes = c.entry.Attributes[:0]

	if code == 0 {
		c.entry.Tag = 0
		c.entry.Children = false
		return &c.entry, nil
	}

	abbrev, ok := c.abbrevs[code]
	if !ok {
		c.r.fail(KindInvalid, "reference to undefined abbreviation code %d", code)
		return nil, c.r.err
	}
	c.entry.Tag = abbrev.Tag
	c.entry.Children = abbrev.Children

	for _, schema := range abbrev.Attributes {
		data := decodeAttributeData(&c.r, schema.Form, c.ctx)
		if c.r.err != nil {
			return nil, c.r.err
		}
		c.entry.Attributes = append(c.entry.Attributes, Attribute{At: schema.At, Data: data})
	}

	return &c.entry, nil
}

// seek repositions the cursor's reader to the given absolute section
// offset, which must fall within [dataOffset, dataEnd].
func (c *Cursor) seek(absOffset int) {
	rel := absOffset - c.dataOffset
	c.r = newReader("info", c.r.order, absOffset, c.data[rel:])
}

// NextSibling skips forward to the sibling of the current entry: the
// next entry at the current entry's depth. If the current entry has
// no children, this is equivalent to Next.
func (c *Cursor) NextSibling() (*DIE, error) {
	depth := 0
	if c.entry.Children {
		depth = 1
	}

	for depth > 0 {
		if sib, ok := c.entry.Val(AttrSibling); ok && sib.Class == ClassRef {
			target := int(uint64(c.unitOffset) + sib.U)
			if target > c.r.off && target < c.dataEnd {
				c.seek(target)
				depth--
				continue
			}
		}

		entry, err := c.Next()
		if err != nil {
			return nil, err
		}
		if entry == nil {
			return nil, nil
		}
		if entry.Code == 0 {
			depth--
		} else if entry.Children {
			depth++
		}
	}

	return c.Next()
}

// Tree wraps a Cursor with document-order depth tracking, the
// recursive-traversal façade over the flat prefix-order cursor.
type Tree struct {
	cur    *Cursor
	depth  int
	primed bool
}

// NewTree returns a tree-iterator façade over c. c must not have been
// advanced yet.
func NewTree(c *Cursor) *Tree {
	return &Tree{cur: c}
}

// Next returns the next DIE in document order together with its
// depth relative to the unit root (the root compile/type unit DIE is
// depth 0), or (nil, 0, nil) once the body is exhausted. Null DIEs
// are returned like any other entry so callers can observe where a
// subtree closes.
func (t *Tree) Next() (*DIE, int, error) {
	entry, err := t.cur.Next()
	if err != nil || entry == nil {
		return nil, 0, err
	}

	depth := t.depth
	if entry.Code == 0 {
		t.depth--
	} else if entry.Children {
		t.depth++
	}
	return entry, depth, nil
}

// encodeDIE appends the encoding of d to w, validating it against
// abbrev: Code, Children and attribute schema must match exactly. A
// null DIE (Code == 0) encodes as a single zero ULEB.
func encodeDIE(w *writer, ctx UnitContext, abbrev Abbrev, d *DIE) {
	if d.Code == 0 {
		w.uleb(0)
		return
	}
	if d.Code != abbrev.Code || d.Tag != abbrev.Tag || d.Children != abbrev.Children {
		w.fail(KindInvalid, "DIE does not match its abbreviation")
		return
	}
	if len(d.Attributes) != len(abbrev.Attributes) {
		w.fail(KindInvalid, "DIE attribute count does not match its abbreviation")
		return
	}

	w.uleb(d.Code)
	for i, schema := range abbrev.Attributes {
		attr := d.Attributes[i]
		if attr.At != schema.At {
			w.fail(KindInvalid, "DIE attribute order does not match its abbreviation")
			return
		}
		encodeAttributeData(w, schema.Form, attr.Data, ctx, false)
		if w.err != nil {
			return
		}
	}
}
