// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command linehist prints a text histogram of how many line-table
// rows fall in each address bucket of a DWARF line program,
// identifying where a compilation unit's address range is densest.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/aclements/go-dwarf/dwarf"
	"github.com/aclements/go-dwarf/elfsections"
	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/vec"
)

var (
	flagBins = flag.Int("bins", 40, "number of histogram bins")
	flagUnit = flag.Int("unit", -1, "dump only the unit at this .debug_info offset")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: linehist [flags] binary\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("linehist: ")
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

	it := dwarf.NewUnitIterator(sections, false)
	for {
		h, err := it.Next()
		if err != nil {
			log.Fatal(err)
		}
		if h == nil {
			break
		}
		if *flagUnit >= 0 && h.Offset != *flagUnit {
			continue
		}

		abbrevs, err := getAbbrevs(h.AbbrevOffset)
		if err != nil {
			log.Fatal(err)
		}
		addrs := unitLineAddrs(sections, h, abbrevs)
		if len(addrs) == 0 {
			continue
		}
		fmt.Printf("unit at %#x: %d rows\n", h.Offset, len(addrs))
		printHistogram(addrs, *flagBins)
	}
}

func unitLineAddrs(sections *dwarf.Sections, h *dwarf.UnitHeader, abbrevs dwarf.AbbrevTable) []float64 {
	cur := dwarf.NewCursor(h, abbrevs, sections.ByteOrder())
	root, err := cur.Next()
	if err != nil || root == nil {
		return nil
	}
	stmtList, ok := root.Val(dwarf.AttrStmtList)
	if !ok {
		return nil
	}
	lr, err := dwarf.NewLineReader(sections, stmtList.U)
	if err != nil {
		log.Fatal(err)
	}

	var addrs []float64
	for {
		row, err := lr.Next()
		if err != nil {
			log.Fatal(err)
		}
		if row == nil {
			break
		}
		if row.EndSequence {
			continue
		}
		addrs = append(addrs, float64(row.Address))
	}
	return addrs
}

func printHistogram(addrs []float64, bins int) {
	lo, hi := addrs[0], addrs[0]
	for _, a := range addrs {
		if a < lo {
			lo = a
		}
		if a > hi {
			hi = a
		}
	}
	if lo == hi {
		hi = lo + 1
	}

	scaler := scale.Linear{Min: lo, Max: hi}

	counts := make([]int, bins)
	mapped := vec.Map(scaler.Map, addrs)
	for _, x := range mapped {
		b := int(x * float64(bins))
		if b < 0 {
			b = 0
		}
		if b >= bins {
			b = bins - 1
		}
		counts[b]++
	}

	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}
	if maxCount == 0 {
		maxCount = 1
	}

	const width = 50
	for i, c := range counts {
		barLen := c * width / maxCount
		addr := lo + (hi-lo)*float64(i)/float64(bins)
		fmt.Printf("%#012x %6d %s\n", uint64(addr), c, strings.Repeat("#", barLen))
	}
}
