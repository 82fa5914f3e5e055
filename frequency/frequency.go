// Package frequency replays a list of frequency changes: the resulting drift
// and the first frequency reached twice when the list repeats forever.
package frequency

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/aoc2018/input"
)

var (
	// ErrMalformedChange indicates a line that is not a signed integer.
	ErrMalformedChange = errors.New("frequency: malformed change")

	// ErrNoChanges indicates an empty change list.
	ErrNoChanges = input.Invalid("frequency: no changes")

	// ErrNoRepeat indicates the cycled changes never revisit a frequency.
	ErrNoRepeat = input.Invalid("frequency: no frequency is ever reached twice")
)

// Parse reads one signed change per line ("+3", "-2", "7").
func Parse(lines []string) ([]int, error) {
	changes := make([]int, 0, len(lines))
	for i, line := range lines {
		v, err := strconv.Atoi(line)
		if err != nil {
			return nil, &input.ParseError{Line: i + 1, Text: line, Err: ErrMalformedChange}
		}
		changes = append(changes, v)
	}

	return changes, nil
}

// Sum returns the frequency after applying every change once, from zero.
func Sum(changes []int) int {
	total := 0
	for _, c := range changes {
		total += c
	}

	return total
}

// FirstRepeat cycles through changes starting at frequency zero, which
// counts as already reached, and returns the first frequency reached twice.
//
// With a non-zero drift D every later pass shifts the first pass's values
// by D, so the first repeat appears within (max-min)/|D| + 1 passes, where
// max and min bound the first pass (zero included). Past that, ErrNoRepeat.
func FirstRepeat(changes []int) (int, error) {
	if len(changes) == 0 {
		return 0, ErrNoChanges
	}

	lo, hi, f := 0, 0, 0
	for _, c := range changes {
		f += c
		lo, hi = min(lo, f), max(hi, f)
	}
	passes := 2
	if drift := f; drift != 0 {
		if drift < 0 {
			drift = -drift
		}
		passes = (hi-lo)/drift + 1
	}

	seen := map[int]struct{}{0: {}}
	f = 0
	for pass := 0; pass < passes; pass++ {
		for _, c := range changes {
			f += c
			if _, ok := seen[f]; ok {
				return f, nil
			}
			seen[f] = struct{}{}
		}
	}

	return 0, fmt.Errorf("after %d passes: %w", passes, ErrNoRepeat)
}
