/*
Package either implements the two-case union with named cases Left and Right.

Haskell:

	data Either a b = Left a | Right b

Go:

	e := either.Right[int]("2")
	n := either.Match(e,
	    func(i int) int { return i },
	    func(s string) int { return len(s) })

An Either is a union.Of2 with Left as its first case and Right as its second;
both views convert into each other without copying payloads.
*/
package either

import (
	"fmt"
	"iter"

	"github.com/npillmayer/symmetry/option"
	"github.com/npillmayer/symmetry/union"
)

// Either holds either a value of type L or a value of type R.
// The zero value is Left holding the zero value of L.
type Either[L, R any] struct {
	sum union.Of2[L, R]
}

// Left creates an Either holding a Left value.
func Left[L, R any](v L) Either[L, R] {
	return Either[L, R]{sum: union.Case1Of2[L, R](v)}
}

// Right creates an Either holding a Right value.
func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{sum: union.Case2Of2[L](v)}
}

// FromUnion views a two-case union as an Either.
func FromUnion[L, R any](u union.Of2[L, R]) Either[L, R] {
	return Either[L, R]{sum: u}
}

// Union views e as a two-case union.
func (e Either[L, R]) Union() union.Of2[L, R] {
	return e.sum
}

// Match calls onLeft or onRight, depending on the case populated in e.
func Match[L, R, X any](e Either[L, R], onLeft func(L) X, onRight func(R) X) X {
	return union.Match2(e.sum, onLeft, onRight)
}

// Map applies f to a Right value; a Left value is passed through.
func Map[L, R, S any](e Either[L, R], f func(R) S) Either[L, S] {
	return Match(e, Left[L, S], func(v R) Either[L, S] {
		return Right[L](f(v))
	})
}

// Bind applies f to a Right value; a Left value is passed through.
func Bind[L, R, S any](e Either[L, R], f func(R) Either[L, S]) Either[L, S] {
	return Match(e, Left[L, S], f)
}

// Left projects e to an option of its Left value.
func (e Either[L, R]) Left() option.Option[L] {
	return e.sum.Left()
}

// Right projects e to an option of its Right value.
func (e Either[L, R]) Right() option.Option[R] {
	return e.sum.Right()
}

// IsLeft is true if e holds a Left value.
func (e Either[L, R]) IsLeft() bool {
	return Match(e,
		func(L) bool { return true },
		func(R) bool { return false })
}

// IsRight is true if e holds a Right value.
func (e Either[L, R]) IsRight() bool {
	return !e.IsLeft()
}

// All iterates over the Right value of e, if present.
func (e Either[L, R]) All() iter.Seq[R] {
	return e.sum.Rights()
}

func (e Either[L, R]) String() string {
	return Match(e,
		func(v L) string { return fmt.Sprintf("Left(%v)", v) },
		func(v R) string { return fmt.Sprintf("Right(%v)", v) })
}
