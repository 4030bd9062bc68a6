package internal

import (
	"iter"
	"slices"
)

// IterSeq2Concat concatenates multiple dual-return iterators into a single iterator sequence.
func IterSeq2Concat[T1 any, T2 any](seqs ...iter.Seq2[T1, T2]) iter.Seq2[T1, T2] {
	return func(yield func(T1, T2) bool) {
		for _, seq := range seqs {
			for val1, val2 := range seq {
				if !yield(val1, val2) {
					return
				}
			}
		}
	}
}

// Pair is one element of a dual-return iterator.
type Pair[T1 any, T2 any] struct {
	Key   T1
	Value T2
}

// CollectPairs gathers a dual-return iterator into a slice, stably
// sorted by cmp.
func CollectPairs[T1 any, T2 any](seq iter.Seq2[T1, T2], cmp func(a, b Pair[T1, T2]) int) (pairs []Pair[T1, T2]) {
	for key, value := range seq {
		pairs = append(pairs, Pair[T1, T2]{Key: key, Value: value})
	}
	slices.SortStableFunc(pairs, cmp)
	return
}
