// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package display pretty-prints decoded DWARF structures the way
// readelf --debug-dump and objdump --dwarf do: one indented line per
// attribute, tag names and attribute names spelled out.
package display

import (
	"fmt"
	"io"

	"github.com/aclements/go-dwarf/dwarf"
	"github.com/ianlancetaylor/demangle"
)

// Printer implements the indent()/unindent()/write_fmt()/write_sep()
// formatter contract: a sink that tracks an indent level and prefixes
// each line with two spaces per level.
type Printer struct {
	w          io.Writer
	level      int
	atLineHead bool
	err        error
}

// NewPrinter returns a Printer that writes to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, atLineHead: true}
}

// Indent increases the current indent level by one.
func (p *Printer) Indent() { p.level++ }

// Unindent decreases the current indent level by one.
func (p *Printer) Unindent() {
	if p.level > 0 {
		p.level--
	}
}

// Printf writes an indented, formatted line.
func (p *Printer) Printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	if p.atLineHead {
		for i := 0; i < p.level; i++ {
			if _, err := io.WriteString(p.w, "  "); err != nil {
				p.err = err
				return
			}
		}
	}
	if _, err := fmt.Fprintf(p.w, format, args...); err != nil {
		p.err = err
		return
	}
	p.atLineHead = false
}

// Sep writes the line separator and marks the next write as the
// start of a new (indentable) line.
func (p *Printer) Sep() {
	if p.err != nil {
		return
	}
	if _, err := io.WriteString(p.w, "\n"); err != nil {
		p.err = err
		return
	}
	p.atLineHead = true
}

// Err returns the first write error encountered, if any.
func (p *Printer) Err() error { return p.err }

// PrintUnit prints a one-line summary of a unit header.
func PrintUnit(p *Printer, h *dwarf.UnitHeader) {
	kind := "compile_unit"
	if h.IsTypeUnit {
		kind = "type_unit"
	}
	p.Printf("<%s offset=%#x version=%d addrsize=%d abbrev_offset=%#x>", kind, h.Offset, h.Version, h.AddressSize, h.AbbrevOffset)
	p.Sep()
}

// PrintDIE prints one DIE and all of its attributes, indented to
// depth levels.
func PrintDIE(p *Printer, sections *dwarf.Sections, d *dwarf.DIE, depth int) {
	for i := 0; i < depth; i++ {
		p.Indent()
	}
	if d.IsNull() {
		p.Printf("<%#x> null", d.Offset)
		p.Sep()
	} else {
		p.Printf("<%#x> %s", d.Offset, d.Tag)
		p.Sep()
		p.Indent()
		for _, a := range d.Attributes {
			PrintAttribute(p, sections, &a)
		}
		p.Unindent()
	}
	for i := 0; i < depth; i++ {
		p.Unindent()
	}
}

// PrintAttribute prints one attribute as a single indented line.
// Linkage-name attributes are demangled before printing.
func PrintAttribute(p *Printer, sections *dwarf.Sections, a *dwarf.Attribute) {
	p.Printf("%s: %s", a.At, formatValue(sections, a))
	p.Sep()
}

func formatValue(sections *dwarf.Sections, a *dwarf.Attribute) string {
	d := a.Data
	switch d.Class {
	case dwarf.ClassString, dwarf.ClassStringOffset:
		s, err := d.StringValue(sections)
		if err != nil {
			return fmt.Sprintf("<bad string: %v>", err)
		}
		text := string(s)
		if a.At == dwarf.AttrLinkageName || a.At == dwarf.AttrMIPSLinkageName {
			text = demangle.Filter(text)
		}
		return fmt.Sprintf("%q", text)
	case dwarf.ClassFlag:
		return fmt.Sprintf("%v", d.Bool)
	case dwarf.ClassSData:
		return fmt.Sprintf("%d", d.I)
	case dwarf.ClassBlock, dwarf.ClassExprLoc:
		return fmt.Sprintf("<%d bytes>", len(d.Bytes))
	default:
		return fmt.Sprintf("%#x", d.U)
	}
}

// FormatRow renders one line-table row as its address followed by an
// addr2line-style file:line:column.
func FormatRow(w io.Writer, row *dwarf.LineRow) error {
	name := "??"
	if row.FileEntry != nil {
		name = string(row.FileEntry.Path)
	}
	_, err := fmt.Fprintf(w, "%#x %s:%d:%d", row.Address, name, row.Line, row.Column)
	return err
}
