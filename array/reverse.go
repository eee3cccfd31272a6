package array

// Reverse adapts a forward cursor I into a cursor walking the opposite way.
// It holds a base cursor and denotes the element immediately before base:
// Next moves base backward, Get reads base.Prev().
// Hence Reverse{End()} addresses the last element and Reverse{Begin()} is the
// one-past-the-front sentinel.
type Reverse[I Cursor[I, T], T any] struct {
	base I
}

// MakeReverse wraps base into a reverse cursor.
func MakeReverse[I Cursor[I, T], T any](base I) Reverse[I, T] {
	return Reverse[I, T]{base: base}
}

// RBegin returns a mutable reverse iterator at the last element.
func (a *Array[T]) RBegin() Reverse[Iterator[T], T] {
	return MakeReverse[Iterator[T], T](a.End())
}

// REnd returns a mutable reverse iterator one before the first element.
func (a *Array[T]) REnd() Reverse[Iterator[T], T] {
	return MakeReverse[Iterator[T], T](a.Begin())
}

// CRBegin returns a read-only reverse iterator at the last element.
func (a *Array[T]) CRBegin() Reverse[ConstIterator[T], T] {
	return MakeReverse[ConstIterator[T], T](a.CEnd())
}

// CREnd returns a read-only reverse iterator one before the first element.
func (a *Array[T]) CREnd() Reverse[ConstIterator[T], T] {
	return MakeReverse[ConstIterator[T], T](a.CBegin())
}

// Base returns the underlying forward cursor.
func (r Reverse[I, T]) Base() I { return r.base }

// Next moves one step in reverse order (base moves backward).
func (r Reverse[I, T]) Next() Reverse[I, T] { return Reverse[I, T]{base: r.base.Prev()} }

// Prev moves one step against reverse order (base moves forward).
func (r Reverse[I, T]) Prev() Reverse[I, T] { return Reverse[I, T]{base: r.base.Next()} }

// Advance moves n steps in reverse order.
func (r Reverse[I, T]) Advance(n int) Reverse[I, T] {
	return Reverse[I, T]{base: r.base.Advance(-n)}
}

// Equal reports whether both reverse cursors wrap the same base.
func (r Reverse[I, T]) Equal(o Reverse[I, T]) bool { return r.base == o.base }

// Elem returns the forward cursor positioned at the element r denotes.
// For a mutable reverse iterator, r.Elem().Set(v) writes through it.
func (r Reverse[I, T]) Elem() I { return r.base.Prev() }

// Get returns the element immediately before the base position.
func (r Reverse[I, T]) Get() T { return r.base.Prev().Get() }
