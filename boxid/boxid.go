package boxid

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2018/input"
	"github.com/katalvlaran/aoc2018/seq"
)

var (
	// ErrLengthMismatch indicates two IDs of different lengths were compared.
	ErrLengthMismatch = input.Invalid("boxid: ids differ in length")

	// ErrNoUniqueMatch indicates zero or several near-matching pairs.
	ErrNoUniqueMatch = input.Invalid("boxid: expected exactly one near-matching pair")
)

// repeats reports whether some letter of id occurs exactly twice, and
// whether some letter occurs exactly three times.
func repeats(id string) (two, three bool) {
	counts := make(map[rune]int, len(id))
	for _, r := range id {
		counts[r]++
	}
	for _, n := range counts {
		switch n {
		case 2:
			two = true
		case 3:
			three = true
		}
	}

	return two, three
}

// Checksum returns (#ids with a doubled letter) × (#ids with a tripled letter).
func Checksum(ids []string) int {
	twos, threes := 0, 0
	for _, id := range ids {
		two, three := repeats(id)
		if two {
			twos++
		}
		if three {
			threes++
		}
	}

	return twos * threes
}

// Difference counts the positions at which a and b differ.
func Difference(a, b string) (int, error) {
	ra, rb := []rune(a), []rune(b)
	if len(ra) != len(rb) {
		return 0, fmt.Errorf("%q vs %q: %w", a, b, ErrLengthMismatch)
	}
	n := 0
	for i := range ra {
		if ra[i] != rb[i] {
			n++
		}
	}

	return n, nil
}

// NearMatches returns every pair of IDs differing in exactly one position.
// IDs of different lengths never match.
func NearMatches(ids []string) []seq.Pair[string] {
	return seq.EveryPair(ids, func(a, b string) bool {
		d, err := Difference(a, b)
		return err == nil && d == 1
	})
}

// Common returns the letters a and b share at the same positions.
func Common(a, b string) (string, error) {
	ra, rb := []rune(a), []rune(b)
	if len(ra) != len(rb) {
		return "", fmt.Errorf("%q vs %q: %w", a, b, ErrLengthMismatch)
	}
	var sb strings.Builder
	for i := range ra {
		if ra[i] == rb[i] {
			sb.WriteRune(ra[i])
		}
	}

	return sb.String(), nil
}

// Prototype finds the single near-matching pair and returns their common letters.
func Prototype(ids []string) (string, error) {
	pairs := NearMatches(ids)
	if len(pairs) != 1 {
		return "", fmt.Errorf("found %d pairs: %w", len(pairs), ErrNoUniqueMatch)
	}

	return Common(pairs[0].A, pairs[0].B)
}
