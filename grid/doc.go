// SPDX-License-Identifier: MIT

// Package grid provides a dense, rectangular 2D grid of values stored in a
// single flat row-major buffer.
//
// What:
//
//   - Grid[T] holds Width×Height cells; cell (x,y) lives at index y*Width + x.
//   - Index/Coordinate convert between (x,y) and flat indices.
//   - At/Set are bounds-checked and return ErrOutOfRange instead of panicking.
//   - Border visits every edge cell exactly once, including degenerate grids
//     one row tall or one column wide.
//   - Components finds 4-connected regions of cells (BFS over the flat buffer).
//
// Why:
//
//   - One buffer avoids the aliasing bugs of nested [][]T when deriving views.
//   - Puzzle grids (fabric claims, nearest-point maps) need dense storage and
//     fixed, deterministic iteration order.
//
// Complexity:
//
//   - New: O(W×H) zero-init. At/Set/Index/Coordinate: O(1).
//   - Each/Count/Components: O(W×H). Border: O(W+H).
//
// Errors:
//
//   - ErrEmptyGrid: width or height below one.
//   - ErrTooLarge: Width×Height above MaxCells.
//   - ErrOutOfRange: coordinate outside [0,W)×[0,H).
package grid
