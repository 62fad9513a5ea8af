// Package combination enumerates the k-element subsets of a sequence.
//
// Subsets are produced lazily with an index odometer, so the order is fixed for a given
// input: the evaluator takes a maximum over this sequence and ties must resolve the same
// way every time.
package combination

// Generator walks every k-length subset of items
// Elements within a subset keep their input order.
type Generator[T any] struct {
	items   []T
	k       int
	indices []int
	started bool
	done    bool
}

// New returns a generator over the k-length subsets of items
// If k is negative or larger than len(items), the sequence is empty.
func New[T any](items []T, k int) *Generator[T] {
	g := &Generator[T]{
		items: items,
		k:     k,
	}

	g.Reset()
	return g
}

// Reset restarts the sequence from the first subset
func (g *Generator[T]) Reset() {
	g.started = false
	g.done = g.k < 0 || g.k > len(g.items)
	if g.done {
		g.indices = nil
		return
	}

	g.indices = make([]int, g.k)
	for i := range g.indices {
		g.indices[i] = i
	}
}

// Next advances to the next subset and returns false once the sequence is exhausted
func (g *Generator[T]) Next() bool {
	if g.done {
		return false
	}

	if !g.started {
		g.started = true
		return true
	}

	n := len(g.items)

	// find the rightmost index that has not reached its maximum
	pos := g.k - 1
	for pos >= 0 && g.indices[pos] == pos+n-g.k {
		pos--
	}

	if pos < 0 {
		g.done = true
		return false
	}

	g.indices[pos]++
	for j := pos + 1; j < g.k; j++ {
		g.indices[j] = g.indices[j-1] + 1
	}

	return true
}

// Value returns the current subset
// A new slice is returned on every call, so callers may keep it.
func (g *Generator[T]) Value() []T {
	out := make([]T, len(g.indices))
	for i, idx := range g.indices {
		out[i] = g.items[idx]
	}

	return out
}

// Indices returns a copy of the current index positions
func (g *Generator[T]) Indices() []int {
	out := make([]int, len(g.indices))
	copy(out, g.indices)
	return out
}

// All collects every subset
func All[T any](items []T, k int) [][]T {
	g := New(items, k)
	all := make([][]T, 0, Count(len(items), k))
	for g.Next() {
		all = append(all, g.Value())
	}

	return all
}

// Count returns n choose k
func Count(n, k int) int {
	if k < 0 || k > n {
		return 0
	}

	if k > n-k {
		k = n - k
	}

	result := 1
	for i := 1; i <= k; i++ {
		result = result * (n - k + i) / i
	}

	return result
}
