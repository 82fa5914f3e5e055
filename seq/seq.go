package seq

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrBadChunkSize indicates a chunk size below one.
var ErrBadChunkSize = errors.New("seq: chunk size must be positive")

// Pair is an ordered pair of elements taken from the same slice, A before B.
type Pair[T any] struct {
	A, B T
}

// EveryPair compares every element with every later element and returns the
// pairs for which test holds. Each unordered pair is tested once, so test
// must be symmetric. Self-pairs are never tested.
// Complexity: O(n²/2) calls to test.
func EveryPair[T any](items []T, test func(a, b T) bool) []Pair[T] {
	var out []Pair[T]
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if test(items[i], items[j]) {
				out = append(out, Pair[T]{A: items[i], B: items[j]})
			}
		}
	}

	return out
}

// CountWhere returns how many items satisfy pred.
func CountWhere[T any](items []T, pred func(T) bool) int {
	n := 0
	for _, it := range items {
		if pred(it) {
			n++
		}
	}

	return n
}

// Chunk splits items into consecutive sub-slices of length size; the last
// chunk may be shorter. The chunks alias items.
func Chunk[T any](items []T, size int) ([][]T, error) {
	if size < 1 {
		return nil, ErrBadChunkSize
	}
	out := make([][]T, 0, (len(items)+size-1)/size)
	for lo := 0; lo < len(items); lo += size {
		hi := min(lo+size, len(items))
		out = append(out, items[lo:hi:hi])
	}

	return out, nil
}

// ArgMax returns the index of the largest key(items[i]). Ties keep the
// earliest index. Returns -1 for an empty slice.
func ArgMax[T any, K constraints.Ordered](items []T, key func(T) K) int {
	best := -1
	var bestKey K
	for i, it := range items {
		k := key(it)
		if best < 0 || k > bestKey {
			best, bestKey = i, k
		}
	}

	return best
}

// Abs returns |x|.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// AbsDiff returns |x - y|.
func AbsDiff[T constraints.Signed](x, y T) T {
	return Abs(x - y)
}
