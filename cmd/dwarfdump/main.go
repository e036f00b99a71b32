// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command dwarfdump prints the DWARF debugging information embedded
// in an ELF binary, similar in spirit to readelf --debug-dump=info.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/aclements/go-dwarf/display"
	"github.com/aclements/go-dwarf/dwarf"
	"github.com/aclements/go-dwarf/elfsections"
)

var (
	flagTypes = flag.Bool("types", false, "dump .debug_types instead of .debug_info")
	flagLines = flag.Bool("lines", false, "also dump decoded line tables")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: dwarfdump [flags] binary\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("dwarfdump: ")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		usage()
	}

	sections, file, err := elfsections.Load(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	abbrevTables := map[uint64]dwarf.AbbrevTable{}
	getAbbrevs := func(off uint64) dwarf.AbbrevTable {
		if t, ok := abbrevTables[off]; ok {
			return t
		}
		t, err := dwarf.ReadAbbrevTable(sections.ByteOrder(), int(off), sections.Abbrev)
		if err != nil {
			log.Fatal(err)
		}
		abbrevTables[off] = t
		return t
	}

	p := display.NewPrinter(os.Stdout)
	it := dwarf.NewUnitIterator(sections, *flagTypes)
	for {
		h, err := it.Next()
		if err != nil {
			log.Fatal(err)
		}
		if h == nil {
			break
		}

		display.PrintUnit(p, h)
		abbrevs := getAbbrevs(h.AbbrevOffset)
		cur := dwarf.NewCursor(h, abbrevs, sections.ByteOrder())
		tree := dwarf.NewTree(cur)
		for {
			entry, depth, err := tree.Next()
			if err != nil {
				log.Fatal(err)
			}
			if entry == nil {
				break
			}
			display.PrintDIE(p, sections, entry, depth)
		}

		if *flagLines {
			dumpLines(sections, h, abbrevs)
		}
	}
	if err := p.Err(); err != nil {
		log.Fatal(err)
	}
}

func dumpLines(sections *dwarf.Sections, h *dwarf.UnitHeader, abbrevs dwarf.AbbrevTable) {
	cur := dwarf.NewCursor(h, abbrevs, sections.ByteOrder())
	root, err := cur.Next()
	if err != nil || root == nil {
		return
	}
	stmtList, ok := root.Val(dwarf.AttrStmtList)
	if !ok {
		return
	}
	lr, err := dwarf.NewLineReader(sections, stmtList.U)
	if err != nil {
		log.Fatal(err)
	}
	for {
		row, err := lr.Next()
		if err != nil {
			log.Fatal(err)
		}
		if row == nil {
			break
		}
		display.FormatRow(os.Stdout, row)
		fmt.Println()
	}
}
