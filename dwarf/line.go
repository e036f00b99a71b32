// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dwarf

import (
	"encoding/binary"
	"errors"
)

// FileEntry is one entry of a line program's file table.
type FileEntry struct {
	Path      []byte
	Directory uint64 // index into the program's include directory list
	Timestamp uint64
	Length    uint64
}

// LineRow is one row of the reconstructed address-to-source mapping,
// emitted whenever the line-number program's state machine executes
// a "copy" action.
type LineRow struct {
	Address       uint64
	OpIndex       int
	File          uint64 // index into the line program's file table
	FileEntry     *FileEntry
	Line          uint64
	Column        uint64
	IsStmt        bool
	BasicBlock    bool
	EndSequence   bool
	PrologueEnd   bool
	EpilogueBegin bool
	ISA           uint64
	Discriminator uint64
}

// LineReader interprets the byte-coded line-number program located at
// a given offset in .debug_line, producing a stream of LineRow
// values.
type LineReader struct {
	order binary.ByteOrder

	version               uint16
	minInstructionLength  int
	maxOpsPerInstruction  int
	defaultIsStmt         bool
	lineBase              int
	lineRange             int
	opcodeBase            int
	standardOpcodeLengths []int
	directories           [][]byte
	fileEntries           []*FileEntry

	programStart int
	programBuf   []byte

	r     reader
	state LineRow

	initialPos LineReaderPos
}

// ErrUnknownPC is returned by SeekPC when no row in the program covers
// the requested program counter.
var ErrUnknownPC = errors.New("dwarf: program counter not covered by any line table row")

// NewLineReader returns a reader for the line-number program located
// at byte offset off within sections.Line, as named by a compilation
// unit's DW_AT_stmt_list attribute.
func NewLineReader(sections *Sections, off uint64) (*LineReader, error) {
	order := sections.order()
	if off > uint64(len(sections.Line)) {
		return nil, &DecodeError{Kind: KindInvalid, Section: "line", Offset: int(off), Message: "stmt_list offset beyond section"}
	}

	hdrOffset := int(off)
	r := newReader("line", order, hdrOffset, sections.Line[off:])
	offsetSize, length := r.initialLength()
	if r.err != nil {
		return nil, r.err
	}
	body := r.buf[:length]

	br := newReader("line", order, r.off, body)
	lr := &LineReader{order: order}

	lr.version = br.u16()
	if br.err == nil && (lr.version < 2 || lr.version > 4) {
		br.fail(KindUnsupported, "unknown line table version %d", lr.version)
	}
	headerLength := br.offsetField(offsetSize)
	if br.err != nil {
		return nil, br.err
	}
	programOffset := br.off + int(headerLength)

	lr.minInstructionLength = int(br.u8())
	if lr.version >= 4 {
		lr.maxOpsPerInstruction = int(br.u8())
	} else {
		lr.maxOpsPerInstruction = 1
	}
	lr.defaultIsStmt = br.u8() != 0
	lr.lineBase = int(int8(br.u8()))
	lr.lineRange = int(br.u8())
	if br.err != nil {
		return nil, br.err
	}
	if lr.minInstructionLength == 0 {
		br.fail(KindInvalid, "invalid minimum instruction length: 0")
		return nil, br.err
	}
	if lr.maxOpsPerInstruction == 0 {
		br.fail(KindInvalid, "invalid maximum operations per instruction: 0")
		return nil, br.err
	}
	if lr.lineRange == 0 {
		br.fail(KindInvalid, "invalid line range: 0")
		return nil, br.err
	}

	opcodeBase := br.u8()
	if br.err == nil && opcodeBase == 0 {
		br.fail(KindInvalid, "invalid opcode base: 0")
		return nil, br.err
	}
	lr.opcodeBase = int(opcodeBase)
	lr.standardOpcodeLengths = make([]int, lr.opcodeBase)
	for i := 1; i < lr.opcodeBase; i++ {
		lr.standardOpcodeLengths[i] = int(br.u8())
	}
	if br.err != nil {
		return nil, br.err
	}

	for {
		dir := br.cstring()
		if br.err != nil {
			return nil, br.err
		}
		if len(dir) == 0 {
			break
		}
		lr.directories = append(lr.directories, dir)
	}

	lr.fileEntries = make([]*FileEntry, 1) // file numbering starts at 1
	for {
		done, err := lr.readFileEntry(&br)
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
	}

	br.skip(programOffset - br.off)
	if br.err != nil {
		return nil, br.err
	}

	lr.programStart = br.off
	lr.programBuf = br.buf
	lr.r = br

	lr.state = LineRow{
		Address: 0, OpIndex: 0, File: 1, Line: 1, Column: 0,
		IsStmt: lr.defaultIsStmt,
	}
	lr.updateFileEntry()
	lr.initialPos = lr.Tell()

	return lr, nil
}

func (lr *LineReader) readFileEntry(r *reader) (done bool, err error) {
	name := r.cstring()
	if r.err != nil {
		return false, r.err
	}
	if len(name) == 0 {
		return true, nil
	}
	dirIndex := r.uleb()
	timestamp := r.uleb()
	length := r.uleb()
	if r.err != nil {
		return false, r.err
	}
	if dirIndex > uint64(len(lr.directories)) {
		r.fail(KindInvalid, "directory index too large")
		return false, r.err
	}
	lr.fileEntries = append(lr.fileEntries, &FileEntry{Path: name, Directory: dirIndex, Timestamp: timestamp, Length: length})
	return false, nil
}

func (lr *LineReader) updateFileEntry() {
	if lr.state.File < uint64(len(lr.fileEntries)) {
		lr.state.FileEntry = lr.fileEntries[lr.state.File]
	} else {
		lr.state.FileEntry = nil
	}
}

// Next returns the next row from the line table, or (nil, nil) once
// the program is exhausted. A program may contain several sequences
// (one per non-contiguous address range); after a row with
// EndSequence set, Next resets the state machine and continues into
// the next sequence if the buffer isn't empty.
func (lr *LineReader) Next() (*LineRow, error) {
	if lr.r.err != nil {
		return nil, lr.r.err
	}
	if lr.state.EndSequence {
		if len(lr.r.buf) == 0 {
			return nil, nil
		}
		lr.state = LineRow{Address: 0, OpIndex: 0, File: 1, Line: 1, Column: 0, IsStmt: lr.defaultIsStmt}
		lr.updateFileEntry()
	}

	for {
		if len(lr.r.buf) == 0 {
			lr.r.fail(KindInvalid, "line number program ended without a terminating end_sequence opcode")
			return nil, lr.r.err
		}
		row := lr.step()
		if lr.r.err != nil {
			return nil, lr.r.err
		}
		if row != nil {
			return row, nil
		}
	}
}

// step executes the next opcode, returning the emitted row if the
// opcode requested emission.
func (lr *LineReader) step() *LineRow {
	opcode := int(lr.r.u8())
	if lr.r.err != nil {
		return nil
	}

	if opcode >= lr.opcodeBase {
		adjusted := opcode - lr.opcodeBase
		lr.advancePC(adjusted / lr.lineRange)
		lr.state.Line = uint64(int64(lr.state.Line) + int64(lr.lineBase+adjusted%lr.lineRange))
		return lr.emit()
	}

	switch opcode {
	case 0:
		length := int(lr.r.uleb())
		startOff := lr.r.off
		sub := lr.r.u8()
		if lr.r.err != nil {
			return nil
		}
		if sub == 0 {
			lr.r.fail(KindInvalid, "zero sub-opcode in extended opcode")
			return nil
		}

		switch int(sub) {
		case lneEndSequence:
			lr.state.EndSequence = true
		case lneSetAddress:
			lr.state.Address = lr.r.addr(length - 1)
			lr.state.OpIndex = 0
		case lneDefineFile:
			done, err := lr.readFileEntry(&lr.r)
			if err != nil {
				lr.r.err = err
				return nil
			}
			if done {
				lr.r.fail(KindInvalid, "malformed DW_LNE_define_file operation")
				return nil
			}
			lr.updateFileEntry()
		case lneSetDiscriminator:
			lr.state.Discriminator = lr.r.uleb()
		}
		if lr.r.err != nil {
			return nil
		}

		lr.r.skip(startOff + length - lr.r.off)
		if lr.r.err != nil {
			return nil
		}
		if int(sub) == lneEndSequence {
			return lr.emit()
		}
		return nil

	case lnsCopy:
		return lr.emit()

	case lnsAdvancePC:
		lr.advancePC(int(lr.r.uleb()))

	case lnsAdvanceLine:
		lr.state.Line = uint64(int64(lr.state.Line) + lr.r.sleb())

	case lnsSetFile:
		lr.state.File = lr.r.uleb()
		lr.updateFileEntry()

	case lnsSetColumn:
		lr.state.Column = lr.r.uleb()

	case lnsNegateStmt:
		lr.state.IsStmt = !lr.state.IsStmt

	case lnsSetBasicBlock:
		lr.state.BasicBlock = true

	case lnsConstAddPC:
		lr.advancePC((255 - lr.opcodeBase) / lr.lineRange)

	case lnsFixedAdvancePC:
		lr.state.Address += uint64(lr.r.u16())
		lr.state.OpIndex = 0

	case lnsSetPrologueEnd:
		lr.state.PrologueEnd = true

	case lnsSetEpilogueBegin:
		lr.state.EpilogueBegin = true

	case lnsSetISA:
		lr.state.ISA = lr.r.uleb()

	default:
		for i := 0; i < lr.standardOpcodeLengths[opcode]; i++ {
			lr.r.uleb()
		}
	}
	return nil
}

func (lr *LineReader) advancePC(opAdvance int) {
	opIndex := lr.state.OpIndex + opAdvance
	lr.state.Address += uint64(lr.minInstructionLength * (opIndex / lr.maxOpsPerInstruction))
	lr.state.OpIndex = opIndex % lr.maxOpsPerInstruction
}

func (lr *LineReader) emit() *LineRow {
	result := lr.state
	lr.state.BasicBlock = false
	lr.state.PrologueEnd = false
	lr.state.EpilogueBegin = false
	lr.state.Discriminator = 0
	return &result
}

// LineReaderPos is an opaque bookmark for a LineReader's position,
// obtained from Tell and restored with Seek.
type LineReaderPos struct {
	offset         int
	numFileEntries int
	state          LineRow
}

// Tell returns a bookmark for the reader's current position.
func (lr *LineReader) Tell() LineReaderPos {
	return LineReaderPos{offset: lr.r.off, numFileEntries: len(lr.fileEntries), state: lr.state}
}

// Seek restores the reader to a position previously returned by Tell
// on the same reader.
func (lr *LineReader) Seek(pos LineReaderPos) {
	rel := pos.offset - lr.programStart
	lr.r = newReader("line", lr.order, pos.offset, lr.programBuf[rel:])
	lr.fileEntries = lr.fileEntries[:pos.numFileEntries]
	lr.state = pos.state
}

// Reset restores the reader to the start of the program, as if it had
// just been returned by NewLineReader.
func (lr *LineReader) Reset() {
	lr.Seek(lr.initialPos)
}

// SeekPC advances the reader to the row whose address range covers
// pc and returns it, restarting from the beginning of the program if
// pc lies before the reader's current position. It returns
// ErrUnknownPC if no sequence in the program covers pc.
func (lr *LineReader) SeekPC(pc uint64) (*LineRow, error) {
	if lr.state.Address > pc || lr.r.err != nil {
		lr.Reset()
	}

	var prev *LineRow
	for {
		row, err := lr.Next()
		if err != nil {
			return nil, err
		}
		if row == nil {
			if prev != nil && !prev.EndSequence && prev.Address <= pc {
				return prev, nil
			}
			return nil, ErrUnknownPC
		}
		if row.EndSequence {
			if prev != nil && prev.Address <= pc && pc < row.Address {
				return prev, nil
			}
			prev = nil
			continue
		}
		if prev != nil && prev.Address <= pc && pc < row.Address {
			return prev, nil
		}
		prev = row
	}
}
