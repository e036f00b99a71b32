// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dwarf

// This file implements the LEB128 variable-length integer encodings
// used throughout DWARF. The read side is a single generic loop
// parameterized by the target width (16 or 64 bits); read_u16 is not
// a range check on top of a 64-bit read, it is its own instantiation
// with a 16-bit shift ceiling, so that a run of continuation bytes
// with no terminator overflows a u16 read exactly when it would
// overflow the narrower accumulator, independent of how many more
// bytes a wider read would still accept.

// readUvarintN reads an unsigned LEB128 value from buf, stopping once
// shift would reach or exceed size bits. It returns the value, the
// number of bytes consumed, and an error (EOF or overflow).
func readUvarintN(buf []byte, size uint) (uint64, int, error) {
	var result uint64
	var shift uint
	for i, b := range buf {
		result |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return result, i + 1, nil
		}
		shift += 7
		if shift >= size {
			return 0, 0, errOverflow
		}
	}
	return 0, 0, errEOF
}

func readVarintN(buf []byte, size uint) (int64, int, error) {
	var result int64
	var shift uint
	for i, b := range buf {
		result |= int64(b&0x7f) << shift
		shift += 7
		if b&0x80 == 0 {
			if shift < 64 && shift < size && b&0x40 != 0 {
				result |= -1 << shift
			}
			return result, i + 1, nil
		}
		if shift >= size {
			return 0, 0, errOverflow
		}
	}
	return 0, 0, errEOF
}

// ReadUint64 reads an unsigned LEB128-encoded u64 from the front of
// buf, returning the decoded value and the number of bytes consumed.
func ReadUint64(buf []byte) (uint64, int, error) {
	return readUvarintN(buf, 64)
}

// ReadInt64 reads a signed LEB128-encoded i64 from the front of buf.
func ReadInt64(buf []byte) (int64, int, error) {
	return readVarintN(buf, 64)
}

// ReadUint16 reads an unsigned LEB128-encoded value from the front of
// buf, rejecting any value that does not fit in 16 bits.
func ReadUint16(buf []byte) (uint16, int, error) {
	v, n, err := readUvarintN(buf, 16)
	if err != nil {
		return 0, 0, err
	}
	if v > 0xffff {
		return 0, 0, errOverflow
	}
	return uint16(v), n, nil
}

// AppendUint64 appends the unsigned LEB128 encoding of v to dst.
func AppendUint64(dst []byte, v uint64) []byte {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v == 0 {
			return append(dst, b)
		}
		dst = append(dst, b|0x80)
	}
}

// AppendInt64 appends the signed LEB128 encoding of v to dst.
func AppendInt64(dst []byte, v int64) []byte {
	for {
		b := byte(v & 0x7f)
		sign := b&0x40 != 0
		v >>= 7
		if (v == 0 && !sign) || (v == -1 && sign) {
			return append(dst, b)
		}
		dst = append(dst, b|0x80)
	}
}

// AppendUint16 appends the unsigned LEB128 encoding of v to dst.
func AppendUint16(dst []byte, v uint16) []byte {
	return AppendUint64(dst, uint64(v))
}
