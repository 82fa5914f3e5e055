// SPDX-License-Identifier: MIT

package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a requested width or height below one.
	ErrEmptyGrid = errors.New("grid: width and height must be at least one")
	// ErrOutOfRange indicates a coordinate outside the grid.
	ErrOutOfRange = errors.New("grid: coordinate out of range")
	// ErrTooLarge indicates a requested shape with more than MaxCells cells.
	ErrTooLarge = errors.New("grid: too many cells")
)

// MaxCells bounds Width×Height for any grid built by New.
const MaxCells = 1 << 26

// Grid is a dense Width×Height grid of T in row-major order.
// The zero value is not usable; construct with New.
type Grid[T any] struct {
	Width, Height int
	cells         []T // len == Width*Height, offset y*Width + x
}
