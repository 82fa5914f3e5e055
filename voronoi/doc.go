// SPDX-License-Identifier: MIT

// Package voronoi assigns every cell of a bounded grid to its nearest input
// point under Manhattan distance, and measures the resulting regions.
//
// What:
//
//   - Build covers [0,maxX]×[0,maxY] with one Affinity per cell:
//     AtInput (the cell is an input point), Nearest (a unique closest point)
//     or Contested (two or more points tie for closest).
//   - Unbounded finds points whose region reaches the grid border; such
//     regions extend to infinity in the open plane.
//   - BoundedAreas / LargestBoundedArea size the remaining, finite regions.
//   - Regions lists each owner's cells as one 4-connected region.
//   - SafeRegionSize counts cells whose summed distance to all points stays
//     strictly below a threshold.
//
// Complexity:
//
//   - Build, DistanceSums: O(W·H·P) time, O(W·H) memory, P = number of points.
//   - Unbounded: O(W+H). BoundedAreas: O(W·H).
//
// Puzzle inputs keep P around 50 and W, H in the low hundreds.
//
// Errors:
//
//   - *input.ParseError wrapping ErrMalformedPoint for text that is not "x, y".
//   - ErrEmptyPointSet, ErrNegativeCoordinate, ErrDuplicatePoint: invalid
//     input, all matching input.ErrInvalidInput.
package voronoi
