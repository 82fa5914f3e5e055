// Package seq holds the small generic helpers the puzzle packages share:
// pairwise comparison, predicate counting, fixed-size chunking and a
// deterministic arg-max.
//
// Every helper is pure and allocation-light; none of them panic on user
// input. Chunk reports ErrBadChunkSize for sizes below one.
package seq
