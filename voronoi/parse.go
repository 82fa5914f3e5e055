// SPDX-License-Identifier: MIT

package voronoi

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2018/input"
)

// ParsePoint parses "x, y": two decimal integers separated by exactly ", ".
// Other separators, extra spaces and explicit '+' signs are rejected; a
// leading '-' parses so Build can report ErrNegativeCoordinate.
func ParsePoint(s string) (Point, error) {
	xs, ys, ok := strings.Cut(s, ", ")
	if !ok {
		return Point{}, &input.ParseError{Text: s, Err: fmt.Errorf("%w: missing \", \"", ErrMalformedPoint)}
	}
	x, errX := coordinate(xs)
	y, errY := coordinate(ys)
	if errX != nil || errY != nil {
		return Point{}, &input.ParseError{Text: s, Err: fmt.Errorf("%w: coordinates must be integers", ErrMalformedPoint)}
	}

	return Point{X: x, Y: y}, nil
}

// coordinate is strconv.Atoi without the '+' sign it would accept.
func coordinate(s string) (int, error) {
	if strings.HasPrefix(s, "+") {
		return 0, strconv.ErrSyntax
	}

	return strconv.Atoi(s)
}

// ParsePoints parses one point per line, stopping at the first error.
func ParsePoints(lines []string) ([]Point, error) {
	pts := make([]Point, 0, len(lines))
	for i, line := range lines {
		p, err := ParsePoint(line)
		if err != nil {
			return nil, input.AtLine(err, i+1)
		}
		pts = append(pts, p)
	}

	return pts, nil
}
