// Package polymer reduces polymers in which adjacent units of the same type
// and opposite polarity (case) annihilate.
package polymer

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"

	"github.com/katalvlaran/aoc2018/input"
)

var (
	// ErrBadUnit indicates a unit that is not an ASCII letter.
	ErrBadUnit = errors.New("polymer: units must be ASCII letters")

	// ErrNoUnits indicates an empty polymer where at least one unit is needed.
	ErrNoUnits = input.Invalid("polymer: polymer has no units")
)

// chain is a validated polymer alongside its case-folded unit types.
type chain struct {
	units  string
	folded string // same length as units; folded[i] is the type of units[i]
}

func newChain(p string) (chain, error) {
	for i := 0; i < len(p); i++ {
		if c := p[i]; !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z') {
			return chain{}, &input.ParseError{
				Text: string(c),
				Err:  fmt.Errorf("%w: offset %d", ErrBadUnit, i),
			}
		}
	}

	return chain{units: p, folded: cases.Fold().String(p)}, nil
}

// react runs the reduction with a stack of unit offsets, skipping every unit
// of type skip (0 skips nothing). Returns the surviving length.
func (ch chain) react(skip byte) int {
	stack := make([]int, 0, len(ch.units))
	for i := 0; i < len(ch.units); i++ {
		if ch.folded[i] == skip {
			continue
		}
		if n := len(stack); n > 0 {
			top := stack[n-1]
			if ch.units[top] != ch.units[i] && ch.folded[top] == ch.folded[i] {
				stack = stack[:n-1]
				continue
			}
		}
		stack = append(stack, i)
	}

	return len(stack)
}

// React fully reduces p and returns the number of units left.
func React(p string) (int, error) {
	ch, err := newChain(p)
	if err != nil {
		return 0, err
	}

	return ch.react(0), nil
}

// Shortest removes each unit type in turn (both polarities), reacts the
// rest, and returns the lower-case type giving the shortest result and that
// length. Ties resolve alphabetically.
func Shortest(p string) (unit byte, length int, err error) {
	ch, err := newChain(p)
	if err != nil {
		return 0, 0, err
	}
	if len(p) == 0 {
		return 0, 0, ErrNoUnits
	}

	var present [26]bool
	for i := 0; i < len(ch.folded); i++ {
		present[ch.folded[i]-'a'] = true
	}
	length = len(p) + 1
	for t, ok := range present {
		if !ok {
			continue
		}
		u := byte('a' + t)
		if n := ch.react(u); n < length {
			unit, length = u, n
		}
	}

	return unit, length, nil
}
