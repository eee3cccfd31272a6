// Package array provides Array, a fixed-length ordered container modelled on
// a standard-library fixed array.
//
// An Array[T] holds exactly N values of T in one contiguous block allocated
// at construction. N never changes: there is no append, no resize, and every
// pointer or iterator handed out stays valid while the Array is reachable.
//
// Construction (aggregate-style):
//
//	a, err := array.New[int](3, 1, 2)  // [1 2 0], trailing slots zeroed
//	b := array.Of("x", "y", "z")        // N inferred
//	e := array.MustNew[int](0)          // zero-length
//
// Element access comes in two flavours with different contracts:
//
//	Ref(pos) / Get(pos) / Set(pos, v)   // unchecked, O(1), runtime panic on misuse
//	At(pos) (*T, error)                 // checked, ErrOutOfRange outside [0,N)
//	Front() / Back()                    // unchecked, panic when N == 0
//	Data() []T                          // shared storage, nil when N == 0
//
// Iteration:
//
//	Begin/End, CBegin/CEnd              // forward, mutable / read-only
//	RBegin/REnd, CRBegin/CREnd          // Reverse adaptor over the above
//	All, Values, Backward               // range-over-func views
//
// For N == 0 every Begin/End variant returns the zero cursor, so
// Begin() == End() always holds.
//
// Errors:
//
//	ErrOutOfRange     - checked access outside [0, N).
//	ErrBadSize        - negative N requested.
//	ErrTooManyValues  - more initial values than slots.
//	ErrSizeMismatch   - Swap between arrays of different N.
//	ErrNilArray       - nil operand.
//
// The container does no internal locking. Concurrent reads are safe;
// concurrent writes to the same Array need external synchronization.
package array
