package stats

import (
	"cmp"
	"slices"
)

// Count pairs a value with the number of times it occurred.
type Count[T cmp.Ordered] struct {
	Value T
	Count int
}

// Frequencies tallies values and returns them by descending count. Equal
// counts are ordered by ascending value, so the result is deterministic.
func Frequencies[T cmp.Ordered](values []T) []Count[T] {
	tally := make(map[T]int)
	for _, v := range values {
		tally[v]++
	}

	out := make([]Count[T], 0, len(tally))
	for v, n := range tally {
		out = append(out, Count[T]{Value: v, Count: n})
	}
	slices.SortFunc(out, func(a, b Count[T]) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Value, b.Value)
	})
	return out
}

// Mode returns the most frequent value. Ties resolve to the smallest value.
// ok is false when values is empty.
func Mode[T cmp.Ordered](values []T) (mode Count[T], ok bool) {
	freq := Frequencies(values)
	if len(freq) == 0 {
		return Count[T]{}, false
	}
	return freq[0], true
}
