package array

import "iter"

// All returns an iterator over (index, value) pairs in construction order.
// The sequence is restartable: each range starts again at index 0.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.n; i++ {
			if !yield(i, a.values[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in construction order.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.n; i++ {
			if !yield(a.values[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over (index, value) pairs from the last
// element to the first.
func (a *Array[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := a.n - 1; i >= 0; i-- {
			if !yield(i, a.values[i]) {
				return
			}
		}
	}
}
