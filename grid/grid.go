// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"

	"github.com/katalvlaran/aoc2018/seq"
)

// New allocates a width×height grid with every cell set to T's zero value.
// Returns ErrEmptyGrid if either dimension is below one, ErrTooLarge if the
// grid would exceed MaxCells.
// Complexity: O(W×H) time and memory.
func New[T any](width, height int) (*Grid[T], error) {
	if width < 1 || height < 1 {
		return nil, ErrEmptyGrid
	}
	// Division keeps the check free of overflow.
	if width > MaxCells/height {
		return nil, fmt.Errorf("New(%d,%d): %w", width, height, ErrTooLarge)
	}

	return &Grid[T]{
		Width:  width,
		Height: height,
		cells:  make([]T, width*height),
	}, nil
}

// Len returns the number of cells.
func (g *Grid[T]) Len() int { return len(g.cells) }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Index maps (x,y) to a row-major index: y*Width + x.
// The caller guarantees InBounds(x,y).
func (g *Grid[T]) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (g *Grid[T]) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// At returns the value at (x,y), or ErrOutOfRange.
func (g *Grid[T]) At(x, y int) (T, error) {
	if !g.InBounds(x, y) {
		var zero T
		return zero, fmt.Errorf("Grid.At(%d,%d): %w", x, y, ErrOutOfRange)
	}

	return g.cells[g.Index(x, y)], nil
}

// Set stores v at (x,y), or returns ErrOutOfRange.
func (g *Grid[T]) Set(x, y int, v T) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("Grid.Set(%d,%d): %w", x, y, ErrOutOfRange)
	}
	g.cells[g.Index(x, y)] = v

	return nil
}

// Update replaces the value at (x,y) with fn(old).
func (g *Grid[T]) Update(x, y int, fn func(T) T) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("Grid.Update(%d,%d): %w", x, y, ErrOutOfRange)
	}
	i := g.Index(x, y)
	g.cells[i] = fn(g.cells[i])

	return nil
}

// Fill sets every cell to fn(x,y), row by row.
func (g *Grid[T]) Fill(fn func(x, y int) T) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			g.cells[g.Index(x, y)] = fn(x, y)
		}
	}
}

// Each calls fn for every cell in row-major order.
func (g *Grid[T]) Each(fn func(x, y int, v T)) {
	for i, v := range g.cells {
		x, y := g.Coordinate(i)
		fn(x, y, v)
	}
}

// Count returns how many cells satisfy pred.
func (g *Grid[T]) Count(pred func(T) bool) int {
	return seq.CountWhere(g.cells, pred)
}

// Border calls fn once for every cell on the grid's edge: the top and
// bottom rows first, then the left and right columns of the interior rows.
// A single-row or single-column grid has no interior and no duplicate visits.
// Complexity: O(W+H).
func (g *Grid[T]) Border(fn func(x, y int, v T)) {
	last := g.Height - 1
	for x := 0; x < g.Width; x++ {
		fn(x, 0, g.cells[g.Index(x, 0)])
		if last > 0 {
			fn(x, last, g.cells[g.Index(x, last)])
		}
	}
	right := g.Width - 1
	// Rows 1..Height-2; empty when Height < 3.
	for y := 1; y < last; y++ {
		fn(0, y, g.cells[g.Index(0, y)])
		if right > 0 {
			fn(right, y, g.cells[g.Index(right, y)])
		}
	}
}

// Rows returns the grid as Height row slices of length Width. The rows
// alias the grid's storage.
func (g *Grid[T]) Rows() [][]T {
	rows, _ := seq.Chunk(g.cells, g.Width) // Width >= 1 by construction

	return rows
}

// Clone returns a deep copy of g.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)

	return &Grid[T]{Width: g.Width, Height: g.Height, cells: cells}
}
