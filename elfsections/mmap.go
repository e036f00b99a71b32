// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elfsections

import (
	"bytes"
	"io"
	"os"

	mmap "github.com/edsrzf/mmap-go"
)

func openMapped(path string) (*File, error) {
	osFile, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer osFile.Close()

	m, err := mmap.Map(osFile, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}
	return &File{mmap: m}, nil
}

func (f *File) close() error {
	return f.mmap.Unmap()
}

// newReaderAt adapts a byte slice to io.ReaderAt for elf.NewFile,
// which wants random access without assuming it owns the bytes.
func newReaderAt(b []byte) io.ReaderAt {
	return bytes.NewReader(b)
}
