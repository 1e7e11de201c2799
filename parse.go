// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package linkmap

import "strings"

// splitHeader locates the first non-empty line of content, verifies it is
// an lld v1 column header, and returns it along with the remaining lines
// and the 1-based line number of the first of those remaining lines.
func splitHeader(content string) (header string, rest []string, firstBodyLine int, err error) {
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")

	headerIdx := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		headerIdx = i
		break
	}
	if headerIdx == -1 {
		return "", nil, 0, parseErr(ErrNoHeaderLine, 0, "")
	}
	header = lines[headerIdx]
	if !matchHeader(header) {
		return "", nil, 0, parseErr(ErrHeaderMismatch, headerIdx+1, header)
	}
	return header, lines[headerIdx+1:], headerIdx + 2, nil
}
