// SPDX-License-Identifier: MIT

package voronoi

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/aoc2018/grid"
)

// validate checks the point-set invariants shared by Build and SafeRegionSize.
func validate(points []Point) error {
	if len(points) == 0 {
		return ErrEmptyPointSet
	}
	seen := make(map[Point]struct{}, len(points))
	for _, p := range points {
		if p.X < 0 || p.Y < 0 {
			return fmt.Errorf("%v: %w", p, ErrNegativeCoordinate)
		}
		if p.X >= grid.MaxCells || p.Y >= grid.MaxCells {
			return fmt.Errorf("%v: %w", p, ErrGridTooLarge)
		}
		if _, dup := seen[p]; dup {
			return fmt.Errorf("%v: %w", p, ErrDuplicatePoint)
		}
		seen[p] = struct{}{}
	}

	return nil
}

// extent returns the grid dimensions covering [0,maxX]×[0,maxY].
// validate bounds every coordinate below grid.MaxCells, so p.X+1 cannot wrap.
func extent(points []Point) (width, height int) {
	for _, p := range points {
		width, height = max(width, p.X+1), max(height, p.Y+1)
	}

	return width, height
}

// bounding allocates the grid over the extent of validated points.
func bounding[T any](points []Point) (*grid.Grid[T], error) {
	w, h := extent(points)
	g, err := grid.New[T](w, h)
	if errors.Is(err, grid.ErrTooLarge) {
		return nil, fmt.Errorf("%w: %w", ErrGridTooLarge, err)
	}

	return g, err
}

// Build classifies every cell of the bounding grid of points.
//
// Behavior:
//  1. Validate: non-empty, non-negative, no duplicates, grid within
//     grid.MaxCells (ErrGridTooLarge).
//  2. For each cell in row-major order:
//     • the cell is an input point      → AtInput(point)
//     • two closest points are equidistant → Contested
//     • otherwise                         → Nearest(closest point)
//
// A single input point is Nearest to every other cell. Building the same
// point set twice yields identical maps.
func Build(points []Point) (*Map, error) {
	if err := validate(points); err != nil {
		return nil, err
	}
	cells, err := bounding[Affinity](points)
	if err != nil {
		return nil, err
	}
	inputs := make(map[Point]struct{}, len(points))
	for _, p := range points {
		inputs[p] = struct{}{}
	}
	cells.Fill(func(x, y int) Affinity {
		return classify(Point{X: x, Y: y}, points, inputs)
	})

	return &Map{Cells: cells, Points: slices.Clone(points)}, nil
}

// classify finds the unique closest point to c, or reports a tie.
func classify(c Point, points []Point, inputs map[Point]struct{}) Affinity {
	if _, ok := inputs[c]; ok {
		return Affinity{Kind: AtInput, Point: c}
	}
	best, bestD, tie := 0, c.Distance(points[0]), false
	for i := 1; i < len(points); i++ {
		switch d := c.Distance(points[i]); {
		case d < bestD:
			best, bestD, tie = i, d, false
		case d == bestD:
			tie = true
		}
	}
	if tie {
		return Affinity{Kind: Contested}
	}

	return Affinity{Kind: Nearest, Point: points[best]}
}

// Unbounded returns the set of points owning at least one border cell.
func (m *Map) Unbounded() map[Point]struct{} {
	out := make(map[Point]struct{})
	m.Cells.Border(func(_, _ int, a Affinity) {
		if p, ok := a.Owner(); ok {
			out[p] = struct{}{}
		}
	})

	return out
}

// BoundedAreas returns, for every point whose region never touches the
// border, the number of cells it owns (its own cell included).
func (m *Map) BoundedAreas() map[Point]int {
	unbounded := m.Unbounded()
	areas := make(map[Point]int)
	for _, p := range m.Points {
		if _, skip := unbounded[p]; !skip {
			areas[p] = 0
		}
	}
	m.Cells.Each(func(_, _ int, a Affinity) {
		if p, ok := a.Owner(); ok {
			if _, bounded := areas[p]; bounded {
				areas[p]++
			}
		}
	})

	return areas
}

// LargestBoundedArea returns the bounded region with the most cells.
// Ties resolve to the earliest point in input order. ok is false when every
// region is unbounded.
func (m *Map) LargestBoundedArea() (p Point, area int, ok bool) {
	areas := m.BoundedAreas()
	for _, q := range m.Points {
		if a, bounded := areas[q]; bounded && (!ok || a > area) {
			p, area, ok = q, a, true
		}
	}

	return p, area, ok
}

// Regions groups the owned cells into 4-connected regions keyed by owner.
// Every Manhattan region is 4-connected, so each input point gets exactly
// one entry. Contested cells belong to none.
func (m *Map) Regions() map[Point][]Point {
	owned := func(a Affinity) bool {
		_, ok := a.Owner()
		return ok
	}
	sameOwner := func(a, b Affinity) bool {
		p, _ := a.Owner()
		q, _ := b.Owner()
		return p == q
	}

	regions := make(map[Point][]Point, len(m.Points))
	for _, comp := range m.Cells.Components(owned, sameOwner) {
		cells := make([]Point, len(comp))
		for i, idx := range comp {
			x, y := m.Cells.Coordinate(idx)
			cells[i] = Point{X: x, Y: y}
		}
		a, _ := m.Cells.At(cells[0].X, cells[0].Y)
		owner, _ := a.Owner()
		regions[owner] = append(regions[owner], cells...)
	}

	return regions
}

// String renders the map one row per line: input points as upper-case
// letters, their regions in lower case, contested cells as '.'.
// Points beyond the 26th render as '#' and '+'.
func (m *Map) String() string {
	label := make(map[Point]int, len(m.Points))
	for i, p := range m.Points {
		label[p] = i
	}
	var sb strings.Builder
	for _, row := range m.Cells.Rows() {
		for _, a := range row {
			sb.WriteByte(glyph(a, label))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func glyph(a Affinity, label map[Point]int) byte {
	i := label[a.Point]
	switch a.Kind {
	case AtInput:
		if i < 26 {
			return 'A' + byte(i)
		}
		return '#'
	case Nearest:
		if i < 26 {
			return 'a' + byte(i)
		}
		return '+'
	default:
		return '.'
	}
}

// DistanceSums returns a grid over the bounding box of points where each
// cell holds the sum of its Manhattan distances to every point.
func DistanceSums(points []Point) (*grid.Grid[int], error) {
	if err := validate(points); err != nil {
		return nil, err
	}
	sums, err := bounding[int](points)
	if err != nil {
		return nil, err
	}
	sums.Fill(func(x, y int) int {
		c, total := Point{X: x, Y: y}, 0
		for _, p := range points {
			total += c.Distance(p)
		}
		return total
	})

	return sums, nil
}

// SafeRegionSize counts cells in the bounding box of points whose summed
// distance to all points is strictly less than threshold.
func SafeRegionSize(points []Point, threshold int) (int, error) {
	sums, err := DistanceSums(points)
	if err != nil {
		return 0, err
	}

	return sums.Count(func(total int) bool { return total < threshold }), nil
}
