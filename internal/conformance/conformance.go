// Package conformance runs the fixed-array contract checks through a
// tester.Tester so they can be reported by the arraytest CLI.
package conformance

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/fixedarray/array"
	"github.com/katalvlaran/fixedarray/tester"
)

// check is one group of verifications. It returns the first error from the
// Tester (ErrFailThreshold or a write error) so Run can stop early.
type check func(t *tester.Tester) error

// suite lists the groups in report order.
var suite = []check{
	checkConstruction,
	checkAccess,
	checkOutOfRange,
	checkZeroLength,
	checkFill,
	checkSwap,
	checkIteration,
	checkRoundTrip,
	checkComparison,
}

// Run executes every group against t. It stops at the first error the
// Tester reports and returns it.
func Run(t *tester.Tester) error {
	for _, c := range suite {
		if err := c(t); err != nil {
			return err
		}
	}

	return nil
}

// verifier chains Verify calls, keeping the first error.
type verifier struct {
	t   *tester.Tester
	err error
}

func (v *verifier) check(ok bool, format string, args ...any) {
	if v.err != nil {
		return
	}
	v.err = v.t.Verify(ok, fmt.Sprintf(format, args...))
}

func (v *verifier) checkErr(err, target error, msg string) {
	if v.err != nil {
		return
	}
	v.err = v.t.VerifyError(err, target, msg)
}

func (v *verifier) checkPanics(fn func(), msg string) {
	if v.err != nil {
		return
	}
	v.err = v.t.VerifyPanics(fn, msg)
}

func checkConstruction(t *tester.Tester) error {
	v := &verifier{t: t}

	a, err := array.New[int](4, 1, 2)
	v.checkErr(err, nil, "New(4, 1, 2) succeeds")
	if err == nil {
		v.check(slices.Equal(a.Data(), []int{1, 2, 0, 0}), "missing trailing values are zero: %v", a)
		v.check(a.Size() == 4 && a.MaxSize() == 4, "size() and max_size() equal N")
	}
	_, err = array.New[int](-1)
	v.checkErr(err, array.ErrBadSize, "negative N rejected")
	_, err = array.New[int](1, 1, 2)
	v.checkErr(err, array.ErrTooManyValues, "too many initial values rejected")

	c := array.Of(1, 2, 3)
	cp := c.Clone()
	cp.Set(0, 7)
	v.check(c.Get(0) == 1 && cp.Get(0) == 7, "clone copies elements")

	return v.err
}

func checkAccess(t *tester.Tester) error {
	v := &verifier{t: t}
	a := array.Of(10, 20, 30, 40)

	for i := 0; i < a.Size(); i++ {
		p, err := a.At(i)
		v.check(err == nil && p == a.Ref(i), "at(%d) and [%d] refer to the same element", i, i)
	}
	a.Set(2, 99)
	p, _ := a.At(2)
	v.check(*p == 99, "write via [] visible via at()")
	*p = 33
	v.check(a.Get(2) == 33, "write via at() visible via []")

	v.check(*a.Front() == 10, "front() is the first element")
	v.check(*a.Back() == 40, "back() is the last element")
	v.check(&a.Data()[0] == a.Front(), "data() points at the first element")

	return v.err
}

func checkOutOfRange(t *tester.Tester) error {
	v := &verifier{t: t}
	for _, n := range []int{1, 3, 8} {
		a := array.MustNew[int](n)
		_, err := a.At(n)
		v.checkErr(err, array.ErrOutOfRange, fmt.Sprintf("N=%d: at(N) is out of range", n))
		_, err = a.At(n - 1)
		v.checkErr(err, nil, fmt.Sprintf("N=%d: at(N-1) succeeds", n))
		_, err = a.At(-1)
		v.checkErr(err, array.ErrOutOfRange, fmt.Sprintf("N=%d: at(-1) is out of range", n))
	}

	a := array.Of(1, 2, 3)
	_, err := a.At(5)
	v.checkErr(err, array.ErrOutOfRange, "{1,2,3}.at(5) is out of range")
	v.checkPanics(func() { _ = a.Get(3) }, "unchecked [] past the end panics")

	return v.err
}

func checkZeroLength(t *tester.Tester) error {
	v := &verifier{t: t}
	e := array.MustNew[int](0)

	v.check(e.Empty(), "N=0: empty()")
	v.check(e.Size() == 0 && e.MaxSize() == 0, "N=0: size()==0")
	v.check(e.Data() == nil, "N=0: data() is nil")
	v.check(e.Begin() == e.End(), "N=0: begin()==end()")
	v.check(e.CBegin() == e.CEnd(), "N=0: cbegin()==cend()")
	v.check(e.RBegin() == e.REnd(), "N=0: rbegin()==rend()")
	v.check(e.CRBegin() == e.CREnd(), "N=0: crbegin()==crend()")
	v.check(e.Begin() == array.Iterator[int]{}, "N=0: begin() is the empty position")
	_, err := e.At(0)
	v.checkErr(err, array.ErrOutOfRange, "N=0: at(0) is out of range")
	v.checkPanics(func() { _ = e.Front() }, "N=0: front() panics")
	v.checkPanics(func() { _ = e.Back() }, "N=0: back() panics")

	return v.err
}

func checkFill(t *tester.Tester) error {
	v := &verifier{t: t}
	a := array.Of(1, 2, 3)
	a.Fill(9)
	v.check(slices.Equal(a.Data(), []int{9, 9, 9}), "fill(9) gives {9,9,9}: %v", a)
	v.check(*a.Front() == 9 && *a.Back() == 9, "front()==9 and back()==9 after fill")

	e := array.MustNew[int](0)
	v.check(!panics(func() { e.Fill(9) }), "fill on N=0 is a no-op")

	return v.err
}

func checkSwap(t *tester.Tester) error {
	v := &verifier{t: t}
	a := array.Of(1, 2, 3)
	b := array.Of(4, 5, 6)
	v.checkErr(a.Swap(b), nil, "swap of equal N succeeds")
	v.check(slices.Equal(a.Data(), []int{4, 5, 6}), "swap: a holds b's elements")
	v.check(slices.Equal(b.Data(), []int{1, 2, 3}), "swap: b holds a's elements")

	short := array.Of(7)
	err := a.Swap(short)
	v.checkErr(err, array.ErrSizeMismatch, "swap of different N rejected")
	v.check(errors.Is(err, array.ErrSizeMismatch) && a.Get(0) == 4 && short.Get(0) == 7,
		"failed swap leaves both operands untouched")

	return v.err
}

func checkIteration(t *tester.Tester) error {
	v := &verifier{t: t}
	a := array.Of(1, 2, 3, 4, 5)

	var fwd []int
	for it := a.Begin(); it != a.End(); it = it.Next() {
		fwd = append(fwd, it.Get())
	}
	v.check(slices.Equal(fwd, a.Data()), "begin..end visits N elements in order")

	var cfwd []int
	for it := a.CBegin(); it != a.CEnd(); it = it.Next() {
		cfwd = append(cfwd, it.Get())
	}
	v.check(slices.Equal(cfwd, fwd), "cbegin..cend matches begin..end")

	var rev []int
	for r := a.RBegin(); r != a.REnd(); r = r.Next() {
		rev = append(rev, r.Get())
	}
	want := slices.Clone(fwd)
	slices.Reverse(want)
	v.check(slices.Equal(rev, want), "rbegin..rend visits N elements in reverse")

	var crev []int
	for r := a.CRBegin(); r != a.CREnd(); r = r.Next() {
		crev = append(crev, r.Get())
	}
	v.check(slices.Equal(crev, want), "crbegin..crend matches rbegin..rend")

	v.check(a.Begin() == a.Begin(), "begin() is restartable")
	v.check(slices.Equal(slices.Collect(a.Values()), fwd), "Values() matches begin..end")

	return v.err
}

func checkRoundTrip(t *tester.Tester) error {
	v := &verifier{t: t}
	a := array.MustNew[string](3)
	i := 0
	for it := a.Begin(); it != a.End(); it = it.Next() {
		it.Set(fmt.Sprint("v", i))
		i++
	}
	for i := 0; i < a.Size(); i++ {
		v.check(a.Get(i) == fmt.Sprint("v", i), "iterator write at %d read back via []", i)
	}
	a.RBegin().Elem().Set("last")
	v.check(*a.Back() == "last", "reverse iterator write reaches back()")

	return v.err
}

func checkComparison(t *tester.Tester) error {
	v := &verifier{t: t}
	v.check(array.Equal(array.Of(1, 2), array.Of(1, 2)), "equal arrays compare equal")
	v.check(!array.Equal(array.Of(1, 2), array.Of(2, 1)), "different order compares unequal")
	v.check(array.Compare(array.Of(1, 2), array.Of(1, 3)) < 0, "lexicographic less")

	return v.err
}

func panics(fn func()) (didPanic bool) {
	defer func() {
		if recover() != nil {
			didPanic = true
		}
	}()
	fn()

	return false
}
