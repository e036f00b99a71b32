// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command lineat resolves a PC address to a file:line, the addr2line
// use case, by scanning each compilation unit's line table with
// SeekPC.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/aclements/go-dwarf/dwarf"
	"github.com/aclements/go-dwarf/elfsections"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: lineat binary addr...\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("lineat: ")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 2 {
		usage()
	}

	sections, file, err := elfsections.Load(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	abbrevTables := map[uint64]dwarf.AbbrevTable{}
	getAbbrevs := func(off uint64) (dwarf.AbbrevTable, error) {
		if t, ok := abbrevTables[off]; ok {
			return t, nil
		}
		t, err := dwarf.ReadAbbrevTable(sections.ByteOrder(), int(off), sections.Abbrev)
		if err != nil {
			return nil, err
		}
		abbrevTables[off] = t
		return t, nil
	}

	addrs := make([]uint64, flag.NArg()-1)
	for i, arg := range flag.Args()[1:] {
		a, err := strconv.ParseUint(arg, 0, 64)
		if err != nil {
			log.Fatalf("bad address %q: %v", arg, err)
		}
		addrs[i] = a
	}

	for _, pc := range addrs {
		row, name, err := resolve(sections, getAbbrevs, pc)
		if err != nil {
			fmt.Printf("%#x: %v\n", pc, err)
			continue
		}
		file := "??"
		if row.FileEntry != nil {
			file = row.FileEntry.Path
		}
		fmt.Printf("%#x: %s:%d (unit %s)\n", pc, file, row.Line, name)
	}
}

func resolve(sections *dwarf.Sections, getAbbrevs func(uint64) (dwarf.AbbrevTable, error), pc uint64) (*dwarf.LineRow, string, error) {
	it := dwarf.NewUnitIterator(sections, false)
	for {
		h, err := it.Next()
		if err != nil {
			return nil, "", err
		}
		if h == nil {
			break
		}

		abbrevs, err := getAbbrevs(h.AbbrevOffset)
		if err != nil {
			return nil, "", err
		}
		cur := dwarf.NewCursor(h, abbrevs, sections.ByteOrder())
		root, err := cur.Next()
		if err != nil || root == nil {
			continue
		}
		stmtList, ok := root.Val(dwarf.AttrStmtList)
		if !ok {
			continue
		}
		name, _ := root.Val(dwarf.AttrName)

		lr, err := dwarf.NewLineReader(sections, stmtList.U)
		if err != nil {
			return nil, "", err
		}
		row, err := lr.SeekPC(pc)
		if err == dwarf.ErrUnknownPC {
			continue
		}
		if err != nil {
			return nil, "", err
		}
		return row, fmt.Sprintf("%q", name.Bytes), nil
	}
	return nil, "", dwarf.ErrUnknownPC
}
