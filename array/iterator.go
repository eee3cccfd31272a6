package array

// Cursor is the forward-cursor contract shared by Iterator and ConstIterator.
// Reverse adapts any Cursor into a cursor walking the opposite way.
type Cursor[I any, T any] interface {
	comparable
	Next() I
	Prev() I
	Advance(n int) I
	Get() T
}

// Iterator is a mutable cursor into an Array's storage.
// It is a plain comparable value: two iterators are equal iff they refer to
// the same Array and position. The zero Iterator is the canonical empty
// position returned by Begin and End of a zero-length Array.
//
// Iterators are not bounds-checked. Moving outside [Begin, End] or reading
// at End is a caller error and panics in the Go runtime.
type Iterator[T any] struct {
	owner *Array[T]
	pos   int
}

// Begin returns a mutable iterator at the first element.
func (a *Array[T]) Begin() Iterator[T] {
	if a.n == 0 {
		return Iterator[T]{}
	}

	return Iterator[T]{owner: a, pos: 0}
}

// End returns a mutable iterator one past the last element.
func (a *Array[T]) End() Iterator[T] {
	if a.n == 0 {
		return Iterator[T]{}
	}

	return Iterator[T]{owner: a, pos: a.n}
}

// Next returns the iterator one position forward.
func (it Iterator[T]) Next() Iterator[T] { return it.Advance(1) }

// Prev returns the iterator one position backward.
func (it Iterator[T]) Prev() Iterator[T] { return it.Advance(-1) }

// Advance returns the iterator moved by n positions (n may be negative).
func (it Iterator[T]) Advance(n int) Iterator[T] {
	return Iterator[T]{owner: it.owner, pos: it.pos + n}
}

// Distance returns the number of steps from it to o (o - it).
// Both must come from the same Array.
func (it Iterator[T]) Distance(o Iterator[T]) int { return o.pos - it.pos }

// Equal reports whether it and o denote the same position of the same Array.
func (it Iterator[T]) Equal(o Iterator[T]) bool { return it == o }

// Less reports whether it precedes o. Both must come from the same Array.
func (it Iterator[T]) Less(o Iterator[T]) bool { return it.pos < o.pos }

// Get returns the element under the iterator.
func (it Iterator[T]) Get() T { return it.owner.values[it.pos] }

// Set stores v at the iterator position.
func (it Iterator[T]) Set(v T) { it.owner.values[it.pos] = v }

// Ptr returns a pointer to the element under the iterator.
func (it Iterator[T]) Ptr() *T { return &it.owner.values[it.pos] }

// Const converts a mutable iterator into a read-only one at the same position.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{owner: it.owner, pos: it.pos}
}

// ConstIterator is the read-only counterpart of Iterator. It exposes Get but
// no way to write through or take the address of the element.
type ConstIterator[T any] struct {
	owner *Array[T]
	pos   int
}

// CBegin returns a read-only iterator at the first element.
func (a *Array[T]) CBegin() ConstIterator[T] { return a.Begin().Const() }

// CEnd returns a read-only iterator one past the last element.
func (a *Array[T]) CEnd() ConstIterator[T] { return a.End().Const() }

// Next returns the iterator one position forward.
func (it ConstIterator[T]) Next() ConstIterator[T] { return it.Advance(1) }

// Prev returns the iterator one position backward.
func (it ConstIterator[T]) Prev() ConstIterator[T] { return it.Advance(-1) }

// Advance returns the iterator moved by n positions (n may be negative).
func (it ConstIterator[T]) Advance(n int) ConstIterator[T] {
	return ConstIterator[T]{owner: it.owner, pos: it.pos + n}
}

// Distance returns o - it.
func (it ConstIterator[T]) Distance(o ConstIterator[T]) int { return o.pos - it.pos }

// Equal reports whether it and o denote the same position of the same Array.
func (it ConstIterator[T]) Equal(o ConstIterator[T]) bool { return it == o }

// Less reports whether it precedes o.
func (it ConstIterator[T]) Less(o ConstIterator[T]) bool { return it.pos < o.pos }

// Get returns the element under the iterator.
func (it ConstIterator[T]) Get() T { return it.owner.values[it.pos] }
