package internal

import (
	"iter"
)

// IterSeqConcat concatenates multiple iterators into a single iterator sequence.
func IterSeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}

// IterSeqOne yields a single value.
func IterSeqOne[T any](value T) iter.Seq[T] {
	return func(yield func(T) bool) {
		yield(value)
	}
}

// IterSeqMap converts every element of a slice on the fly.
func IterSeqMap[S any, T any](items []S, conv func(S) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range items {
			if !yield(conv(item)) {
				return
			}
		}
	}
}
