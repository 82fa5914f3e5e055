// SPDX-License-Identifier: MIT

package voronoi

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc2018/grid"
	"github.com/katalvlaran/aoc2018/input"
	"github.com/katalvlaran/aoc2018/seq"
)

// Sentinel errors returned by voronoi.
var (
	// ErrMalformedPoint indicates text that is not "x, y" with integer x and y.
	ErrMalformedPoint = errors.New("voronoi: malformed point")

	// ErrEmptyPointSet indicates no input points.
	ErrEmptyPointSet = input.Invalid("voronoi: point set is empty")

	// ErrNegativeCoordinate indicates a point left of or above the origin.
	ErrNegativeCoordinate = input.Invalid("voronoi: coordinates must be non-negative")

	// ErrDuplicatePoint indicates the same point listed twice.
	ErrDuplicatePoint = input.Invalid("voronoi: duplicate point")

	// ErrGridTooLarge indicates a bounding grid above grid.MaxCells cells.
	ErrGridTooLarge = input.Invalid("voronoi: bounding grid too large")
)

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Distance returns the Manhattan distance between p and q.
func (p Point) Distance(q Point) int {
	return seq.AbsDiff(p.X, q.X) + seq.AbsDiff(p.Y, q.Y)
}

// String renders p as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Kind tags the variant of an Affinity.
type Kind int

const (
	// Contested: two or more input points tie for closest.
	Contested Kind = iota
	// Nearest: Point is the unique closest input point.
	Nearest
	// AtInput: the cell is the input point Point itself.
	AtInput
)

// String names k.
func (k Kind) String() string {
	switch k {
	case Contested:
		return "contested"
	case Nearest:
		return "nearest"
	case AtInput:
		return "at-input"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Affinity classifies one grid cell. Point is meaningful only for Nearest
// and AtInput.
type Affinity struct {
	Kind  Kind
	Point Point
}

// Owner returns the input point whose region contains the cell, if any.
func (a Affinity) Owner() (Point, bool) {
	switch a.Kind {
	case Nearest, AtInput:
		return a.Point, true
	case Contested:
		return Point{}, false
	default:
		return Point{}, false
	}
}

// Map is the dense affinity grid over [0,maxX]×[0,maxY] for a point set.
// Cells.Width == maxX+1 and Cells.Height == maxY+1.
type Map struct {
	Cells  *grid.Grid[Affinity]
	Points []Point // input order; ties in area reporting follow it
}
