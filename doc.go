// Package aoc2018 collects solvers for the first six Advent of Code 2018
// puzzles, each a small batch computation over a text input.
//
// What is inside?
//
//	shiftlog/  day 4: guard shift log aggregation (sleep totals, minute histograms)
//	voronoi/   day 6: Manhattan nearest-point grid, bounded areas, safe region
//	frequency/ day 1: frequency drift and first repeated frequency
//	boxid/     day 2: box-ID checksum and the near-duplicate prototype pair
//	fabric/    day 3: overlapping fabric claims
//	polymer/   day 5: polymer unit reaction
//	grid/      generic dense W×H grid shared by voronoi and fabric
//	seq/       generic slice helpers (pairs, counting, chunking, argmax)
//	input/     line reading, normalisation and parse errors
//
// The aoc2018 command (cmd/aoc2018) selects a day, reads its input file and
// prints both answers:
//
//	AOC_INPUT_DIR=inputs go run ./cmd/aoc2018 -day 6
//
// Quick example (day 6 sample, rendered with Map.String):
//
//	aaaaa.ccc
//	aAaaa.ccc
//	aaaddeccc
//	aadddeccC
//	..dDdeecc
//	bb.deEeec
//	bBb.eeee.
//	bbb.eeeff
//	bbb.eefff
//	bbb.ffffF
//
// Every library reports malformed input as *input.ParseError and logical
// violations as errors wrapping input.ErrInvalidInput; nothing panics on user
// input.
package aoc2018
