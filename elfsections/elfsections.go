// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package elfsections loads DWARF section data out of an ELF object
// file, for consumption by package dwarf. The file is mapped into
// memory rather than read, since debug sections can be large and
// tools using this package typically only touch a fraction of them.
package elfsections

import (
	"debug/elf"
	"encoding/binary"
	"fmt"

	"github.com/aclements/go-dwarf/dwarf"
	mmap "github.com/edsrzf/mmap-go"
)

// sectionNames maps the dwarf.Sections fields to their ELF section
// names. Only the plain ".debug_*" form is listed; macOS-style
// "__debug_*" names are not recognized.
var sectionNames = map[string]string{
	"abbrev": ".debug_abbrev",
	"info":   ".debug_info",
	"line":   ".debug_line",
	"str":    ".debug_str",
	"types":  ".debug_types",
}

// File is an mmap-backed ELF file opened by Load. Close unmaps it.
type File struct {
	mmap mmap.MMap
	elf  *elf.File
}

// Load opens path, maps it into memory, and extracts the DWARF
// section set. The returned File must be closed when the sections are
// no longer needed; the Sections value's buffers alias the mapping
// and are invalid after Close.
func Load(path string) (*dwarf.Sections, *File, error) {
	f, err := openMapped(path)
	if err != nil {
		return nil, nil, err
	}

	ef, err := elf.NewFile(newReaderAt(f.mmap))
	if err != nil {
		f.close()
		return nil, nil, err
	}
	f.elf = ef

	sections := &dwarf.Sections{Order: byteOrder(ef)}
	get := func(name string) ([]byte, error) {
		sec := ef.Section(name)
		if sec == nil {
			return nil, nil
		}
		data, err := sectionData(f.mmap, sec)
		if err != nil {
			return nil, fmt.Errorf("elfsections: reading %s: %w", name, err)
		}
		return data, nil
	}

	var loadErr error
	assign := func(dst *[]byte, name string) {
		if loadErr != nil {
			return
		}
		data, err := get(name)
		if err != nil {
			loadErr = err
			return
		}
		*dst = data
	}
	assign(&sections.Abbrev, sectionNames["abbrev"])
	assign(&sections.Info, sectionNames["info"])
	assign(&sections.Line, sectionNames["line"])
	assign(&sections.Str, sectionNames["str"])
	assign(&sections.Types, sectionNames["types"])
	if loadErr != nil {
		f.close()
		return nil, nil, loadErr
	}

	return sections, f, nil
}

// Close unmaps the underlying file.
func (f *File) Close() error {
	return f.close()
}

func byteOrder(ef *elf.File) binary.ByteOrder {
	if ef.Data == elf.ELFDATA2MSB {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// sectionData returns sec's raw bytes as a sub-slice of the mapping,
// falling back to sec.Data for compressed sections (mmap can't help
// there; those are rare in practice for debug sections).
func sectionData(m mmap.MMap, sec *elf.Section) ([]byte, error) {
	if sec.Type == elf.SHT_NOBITS {
		return nil, nil
	}
	if sec.Flags&elf.SHF_COMPRESSED != 0 {
		return sec.Data()
	}
	end := sec.Offset + sec.Size
	if end > uint64(len(m)) {
		return nil, fmt.Errorf("section %s extends past end of file", sec.Name)
	}
	return m[sec.Offset:end], nil
}
