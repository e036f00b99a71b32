// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dwarf

import "encoding/binary"

// writer accumulates an encoded DWARF structure into dst, using the
// same sticky-error style as reader: once err is set, every write is
// a no-op.
type writer struct {
	dst   []byte
	order binary.ByteOrder
	err   error
}

func newWriter(order binary.ByteOrder) writer {
	return writer{order: order}
}

func (w *writer) fail(kind Kind, message string) {
	if w.err == nil {
		w.err = &EncodeError{Kind: kind, Message: message}
	}
}

func (w *writer) u8(v uint8) {
	if w.err != nil {
		return
	}
	w.dst = append(w.dst, v)
}

func (w *writer) u16(v uint16) {
	if w.err != nil {
		return
	}
	var b [2]byte
	w.order.PutUint16(b[:], v)
	w.dst = append(w.dst, b[:]...)
}

func (w *writer) u32(v uint32) {
	if w.err != nil {
		return
	}
	var b [4]byte
	w.order.PutUint32(b[:], v)
	w.dst = append(w.dst, b[:]...)
}

func (w *writer) u64(v uint64) {
	if w.err != nil {
		return
	}
	var b [8]byte
	w.order.PutUint64(b[:], v)
	w.dst = append(w.dst, b[:]...)
}

func (w *writer) bytes(v []byte) {
	if w.err != nil {
		return
	}
	w.dst = append(w.dst, v...)
}

func (w *writer) cstring(v []byte) {
	if w.err != nil {
		return
	}
	w.dst = append(w.dst, v...)
	w.dst = append(w.dst, 0)
}

func (w *writer) uleb(v uint64) {
	if w.err != nil {
		return
	}
	w.dst = AppendUint64(w.dst, v)
}

func (w *writer) sleb(v int64) {
	if w.err != nil {
		return
	}
	w.dst = AppendInt64(w.dst, v)
}

func (w *writer) uleb16(v uint16) {
	if w.err != nil {
		return
	}
	w.dst = AppendUint16(w.dst, v)
}

func (w *writer) addr(addressSize int, v uint64) {
	switch addressSize {
	case 4:
		w.u32(uint32(v))
	case 8:
		w.u64(v)
	default:
		w.fail(KindUnsupported, "address size out of range")
	}
}

func (w *writer) offsetField(offsetSize int, v uint64) {
	switch offsetSize {
	case 4:
		w.u32(uint32(v))
	case 8:
		w.u64(v)
	default:
		w.fail(KindUnsupported, "offset size out of range")
	}
}

// initialLength writes a DWARF initial-length field for the given
// offset size (4 => DWARF32, 8 => DWARF64 with the 0xFFFFFFFF escape)
// followed by the declared length.
func (w *writer) initialLength(offsetSize int, length uint64) {
	switch offsetSize {
	case 4:
		w.u32(uint32(length))
	case 8:
		w.u32(0xffffffff)
		w.u64(length)
	default:
		w.fail(KindUnsupported, "offset size out of range")
	}
}
