// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"os"

	mmap "github.com/edsrzf/mmap-go"
)

// readMapFile memory-maps path read-only and returns its contents as a
// string. The returned string is a heap copy of the mapped bytes; the
// mapping itself is released before returning.
func readMapFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return "", err
	}
	defer data.Unmap()

	// Copy out of the mapping before returning: the mapping is unmapped
	// when this function returns, and ParseSymbols may retain its input.
	content := make([]byte, len(data))
	copy(content, data)
	return string(content), nil
}
