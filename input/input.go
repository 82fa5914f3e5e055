package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// maxLineBytes bounds a single record; day 5 inputs are one ~50 KiB line.
const maxLineBytes = 1 << 20

// Lines returns every non-blank line of r, NFC-normalised, with trailing
// carriage returns and surrounding spaces removed.
// Complexity: O(N) in the input size.
func Lines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lines []string
	for sc.Scan() {
		line := strings.TrimSpace(norm.NFC.String(sc.Text()))
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: scan: %w", err)
	}

	return lines, nil
}

// ReadLines opens path and returns its lines as described by Lines.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: open: %w", err)
	}
	defer f.Close()

	return Lines(f)
}

// ReadString returns the whole file at path as a single trimmed,
// NFC-normalised string. Used by single-record puzzles.
func ReadString(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("input: read: %w", err)
	}

	return strings.TrimSpace(norm.NFC.String(string(b))), nil
}
