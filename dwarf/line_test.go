// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dwarf

import (
	"encoding/binary"
	"testing"
)

const (
	testLineBase   = -5
	testLineRange  = 14
	testOpcodeBase = 13
)

// appendSequence appends one sequence's opcodes to program: an
// extended DW_LNE_set_address to addr, a special opcode chosen so
// op_delta=0 and line_delta=+1, a DW_LNS_advance_pc to widen the
// row's address range by advance, then DW_LNE_end_sequence.
func appendSequence(program []byte, addr uint32, advance byte) []byte {
	// special = (line_delta - line_base) + (op_delta * line_range) + opcode_base
	special := (1 - testLineBase) + 0*testLineRange + testOpcodeBase

	program = append(program, 0x00, 0x05, byte(lneSetAddress),
		byte(addr), byte(addr>>8), byte(addr>>16), byte(addr>>24))
	program = append(program, byte(special))
	program = append(program, byte(lnsAdvancePC), advance)
	program = append(program, 0x00, 0x01, byte(lneEndSequence))
	return program
}

// buildLineSections wraps program in a minimal .debug_line unit with
// the header fields named by the line-VM scenario:
// minimum_instruction_length=1, maximum_operations_per_instruction=1,
// default_is_stmt=true, line_base=-5, line_range=14, opcode_base=13.
func buildLineSections(t *testing.T, program []byte) *Sections {
	t.Helper()

	const (
		lineBase   = testLineBase
		lineRange  = testLineRange
		opcodeBase = testOpcodeBase
	)
	var lineBaseI8 int8 = lineBase // route through a variable: the wire byte is lineBase's bit pattern, not its representable value

	w := newWriter(binary.LittleEndian)
	w.u16(4) // version
	headerLengthPos := len(w.dst)
	w.u32(0) // header_length placeholder (DWARF32)
	afterHeaderLength := len(w.dst)

	w.u8(1)                 // minimum_instruction_length
	w.u8(1)                 // maximum_operations_per_instruction (version >= 4)
	w.u8(1)                 // default_is_stmt
	w.u8(uint8(lineBaseI8)) // line_base
	w.u8(lineRange)         // line_range
	w.u8(opcodeBase)        // opcode_base
	for i := 1; i < opcodeBase; i++ {
		w.u8(0) // standard_opcode_lengths, unused by this program
	}
	w.u8(0) // empty include_directories
	w.u8(0) // empty file_names

	headerLength := uint32(len(w.dst) - afterHeaderLength)
	binary.LittleEndian.PutUint32(w.dst[headerLengthPos:headerLengthPos+4], headerLength)

	w.bytes(program)
	if w.err != nil {
		t.Fatalf("building header: %v", w.err)
	}

	full := newWriter(binary.LittleEndian)
	full.initialLength(4, uint64(len(w.dst)))
	full.bytes(w.dst)
	if full.err != nil {
		t.Fatalf("building unit: %v", full.err)
	}

	return &Sections{Line: full.dst, Order: binary.LittleEndian}
}

// buildLineProgram builds a single-sequence program: set_address to
// 0x1000, a row, an advance_pc widening the range to 0x1010, then
// end_sequence.
func buildLineProgram(t *testing.T) *Sections {
	t.Helper()
	var program []byte
	program = appendSequence(program, 0x1000, 0x10)
	return buildLineSections(t, program)
}

// buildMultiSequenceLineProgram builds a program with two disjoint
// sequences, the way a compiler emits one per non-contiguous address
// range (e.g. under -ffunction-sections/COMDAT): 0x1000..0x1010 and
// 0x2000..0x2020.
func buildMultiSequenceLineProgram(t *testing.T) *Sections {
	t.Helper()
	var program []byte
	program = appendSequence(program, 0x1000, 0x10)
	program = appendSequence(program, 0x2000, 0x20)
	return buildLineSections(t, program)
}

func TestLineVMMinimal(t *testing.T) {
	sections := buildLineProgram(t)
	lr, err := NewLineReader(sections, 0)
	if err != nil {
		t.Fatalf("NewLineReader: %v", err)
	}

	row1, err := lr.Next()
	if err != nil {
		t.Fatalf("Next #1: %v", err)
	}
	if row1 == nil {
		t.Fatal("Next #1: got nil row")
	}
	if row1.Address != 0x1000 || row1.Line != 2 || !row1.IsStmt || row1.EndSequence {
		t.Errorf("row1 = %+v, want {Address:0x1000 Line:2 IsStmt:true EndSequence:false}", row1)
	}

	row2, err := lr.Next()
	if err != nil {
		t.Fatalf("Next #2: %v", err)
	}
	if row2 == nil {
		t.Fatal("Next #2: got nil row")
	}
	if row2.Address != 0x1010 || row2.Line != 2 || !row2.EndSequence {
		t.Errorf("row2 = %+v, want {Address:0x1010 Line:2 EndSequence:true}", row2)
	}

	row3, err := lr.Next()
	if err != nil {
		t.Fatalf("Next #3: %v", err)
	}
	if row3 != nil {
		t.Errorf("Next #3 = %+v, want nil (program exhausted)", row3)
	}
}

func TestLineVMDeterministic(t *testing.T) {
	sections := buildLineProgram(t)

	collect := func() []LineRow {
		lr, err := NewLineReader(sections, 0)
		if err != nil {
			t.Fatalf("NewLineReader: %v", err)
		}
		var rows []LineRow
		for {
			row, err := lr.Next()
			if err != nil {
				t.Fatalf("Next: %v", err)
			}
			if row == nil {
				break
			}
			rows = append(rows, *row)
		}
		return rows
	}

	a, b := collect(), collect()
	if len(a) != len(b) {
		t.Fatalf("got %d and %d rows across runs", len(a), len(b))
	}
	for i := range a {
		if a[i].Address != b[i].Address || a[i].Line != b[i].Line || a[i].EndSequence != b[i].EndSequence {
			t.Errorf("row %d differs across runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestLineReaderSeekPC(t *testing.T) {
	sections := buildLineProgram(t)
	lr, err := NewLineReader(sections, 0)
	if err != nil {
		t.Fatalf("NewLineReader: %v", err)
	}

	row, err := lr.SeekPC(0x1000)
	if err != nil {
		t.Fatalf("SeekPC(0x1000): %v", err)
	}
	if row.Line != 2 {
		t.Errorf("got line %d, want 2", row.Line)
	}

	_, err = lr.SeekPC(0x2000)
	if err != ErrUnknownPC {
		t.Fatalf("SeekPC(0x2000): got err %v, want ErrUnknownPC", err)
	}
}

// TestLineVMMultiSequence verifies that Next resets the state machine
// and keeps reading after a sequence's end_sequence row, instead of
// treating the first EndSequence as the end of the whole program.
func TestLineVMMultiSequence(t *testing.T) {
	sections := buildMultiSequenceLineProgram(t)
	lr, err := NewLineReader(sections, 0)
	if err != nil {
		t.Fatalf("NewLineReader: %v", err)
	}

	want := []LineRow{
		{Address: 0x1000, Line: 2, IsStmt: true, EndSequence: false},
		{Address: 0x1010, Line: 2, EndSequence: true},
		{Address: 0x2000, Line: 2, IsStmt: true, EndSequence: false},
		{Address: 0x2020, Line: 2, EndSequence: true},
	}
	for i, w := range want {
		row, err := lr.Next()
		if err != nil {
			t.Fatalf("Next #%d: %v", i, err)
		}
		if row == nil {
			t.Fatalf("Next #%d: got nil row, want %+v", i, w)
		}
		if row.Address != w.Address || row.Line != w.Line || row.EndSequence != w.EndSequence {
			t.Errorf("row %d = %+v, want %+v", i, row, w)
		}
	}

	last, err := lr.Next()
	if err != nil {
		t.Fatalf("final Next: %v", err)
	}
	if last != nil {
		t.Errorf("final Next = %+v, want nil (program exhausted)", last)
	}
}
