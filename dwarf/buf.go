// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dwarf

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// reader is a cursor over a byte slice within one named DWARF
// section. Once a read fails, err is set and every subsequent read on
// the same reader is a no-op that returns the zero value; callers
// issue a run of reads and check err once at the end, the same
// sticky-error style this package's line-table reader already uses.
type reader struct {
	section string
	off     int
	buf     []byte
	order   binary.ByteOrder
	err     error
}

func newReader(section string, order binary.ByteOrder, off int, buf []byte) reader {
	return reader{section: section, off: off, buf: buf, order: order}
}

func (r *reader) fail(kind Kind, format string, args ...interface{}) {
	if r.err == nil {
		r.err = &DecodeError{Kind: kind, Section: r.section, Offset: r.off, Message: fmt.Sprintf(format, args...)}
	}
}

func (r *reader) failErr(err error, format string, args ...interface{}) {
	switch err {
	case errOverflow:
		r.fail(KindOverflow, format, args...)
	case errEOF:
		r.fail(KindEOF, format, args...)
	default:
		r.fail(KindInvalid, format, args...)
	}
}

func (r *reader) need(n int) bool {
	if r.err != nil {
		return false
	}
	if n < 0 || len(r.buf) < n {
		r.fail(KindEOF, "unexpected end of %s section", r.section)
		return false
	}
	return true
}

func (r *reader) u8() uint8 {
	if !r.need(1) {
		return 0
	}
	v := r.buf[0]
	r.buf = r.buf[1:]
	r.off++
	return v
}

func (r *reader) u16() uint16 {
	if !r.need(2) {
		return 0
	}
	v := r.order.Uint16(r.buf)
	r.buf = r.buf[2:]
	r.off += 2
	return v
}

func (r *reader) u32() uint32 {
	if !r.need(4) {
		return 0
	}
	v := r.order.Uint32(r.buf)
	r.buf = r.buf[4:]
	r.off += 4
	return v
}

func (r *reader) u64() uint64 {
	if !r.need(8) {
		return 0
	}
	v := r.order.Uint64(r.buf)
	r.buf = r.buf[8:]
	r.off += 8
	return v
}

func (r *reader) bytes(n int) []byte {
	if !r.need(n) {
		return nil
	}
	v := r.buf[:n:n]
	r.buf = r.buf[n:]
	r.off += n
	return v
}

func (r *reader) skip(n int) {
	if n == 0 || r.err != nil {
		return
	}
	if !r.need(n) {
		return
	}
	r.buf = r.buf[n:]
	r.off += n
}

// cstring reads a NUL-terminated string, not including the NUL.
func (r *reader) cstring() []byte {
	if r.err != nil {
		return nil
	}
	i := bytes.IndexByte(r.buf, 0)
	if i < 0 {
		r.fail(KindInvalid, "unterminated string in %s section", r.section)
		return nil
	}
	v := r.buf[:i:i]
	r.buf = r.buf[i+1:]
	r.off += i + 1
	return v
}

func (r *reader) uleb() uint64 {
	if r.err != nil {
		return 0
	}
	v, n, err := ReadUint64(r.buf)
	if err != nil {
		r.failErr(err, "ULEB128: %v", err)
		return 0
	}
	r.buf = r.buf[n:]
	r.off += n
	return v
}

func (r *reader) sleb() int64 {
	if r.err != nil {
		return 0
	}
	v, n, err := ReadInt64(r.buf)
	if err != nil {
		r.failErr(err, "SLEB128: %v", err)
		return 0
	}
	r.buf = r.buf[n:]
	r.off += n
	return v
}

func (r *reader) uleb16() uint16 {
	if r.err != nil {
		return 0
	}
	v, n, err := ReadUint16(r.buf)
	if err != nil {
		r.failErr(err, "ULEB128: %v", err)
		return 0
	}
	r.buf = r.buf[n:]
	r.off += n
	return v
}

// addr reads an address-sized (4 or 8 byte) value.
func (r *reader) addr(addressSize int) uint64 {
	switch addressSize {
	case 4:
		return uint64(r.u32())
	case 8:
		return r.u64()
	default:
		r.fail(KindUnsupported, "address size %d", addressSize)
		return 0
	}
}

// offsetField reads an offset-sized (4 or 8 byte) value, the width
// determined by whether the enclosing unit is DWARF32 or DWARF64.
func (r *reader) offsetField(offsetSize int) uint64 {
	switch offsetSize {
	case 4:
		return uint64(r.u32())
	case 8:
		return r.u64()
	default:
		r.fail(KindUnsupported, "offset size %d", offsetSize)
		return 0
	}
}

// initialLength reads a DWARF initial-length field, returning the
// offset size it implies (4 for DWARF32, 8 for DWARF64) and the
// declared length of the following data.
func (r *reader) initialLength() (offsetSize int, length int) {
	if r.err != nil {
		return 4, 0
	}
	first := r.u32()
	if r.err != nil {
		return 4, 0
	}
	switch {
	case first == 0xffffffff:
		v := r.u64()
		if r.err != nil {
			return 8, 0
		}
		if v > uint64(len(r.buf)) {
			r.fail(KindInvalid, "initial length %d exceeds remaining input", v)
			return 8, 0
		}
		return 8, int(v)
	case first >= 0xfffffff0:
		r.fail(KindUnsupported, "reserved initial-length value %#x", first)
		return 4, 0
	default:
		if uint64(first) > uint64(len(r.buf)) {
			r.fail(KindInvalid, "initial length %d exceeds remaining input", first)
			return 4, 0
		}
		return 4, int(first)
	}
}
