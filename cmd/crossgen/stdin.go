package main

import (
	"bufio"
	"io"
)

// readWords reads one word per line until EOF or the first empty
// line. Lines are compared and measured by Unicode code point later
// in the pipeline (pkg/layout and pkg/cellgrid index by rune, not
// byte), so no decoding happens here beyond what bufio.Scanner's
// default UTF-8-safe line split already does.
func readWords(r io.Reader) []string {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			break
		}
		words = append(words, line)
	}
	return words
}
