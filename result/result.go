/*
Package result implements the result of a computation that may fail.

A Result is an either.Either with an error on the Left and a value on the
Right.
*/
package result

import (
	"fmt"

	"github.com/npillmayer/symmetry"
	"github.com/npillmayer/symmetry/either"
	"github.com/npillmayer/symmetry/option"
)

// Result is either Ok(value) or Err(error). The zero value is a failed
// result, with an error wrapping symmetry.ErrInvalidState.
type Result[T any] struct {
	e either.Either[error, T]
}

var errZeroResult = fmt.Errorf("%w: uninitialized result", symmetry.ErrInvalidState)

// Ok creates a successful result.
func Ok[T any](x T) Result[T] {
	return Result[T]{e: either.Right[error](x)}
}

// Err creates a failed result. err must not be nil.
func Err[T any](err error) Result[T] {
	if err == nil {
		panic(fmt.Errorf("%w: result.Err called with nil error", symmetry.ErrInvalidState))
	}
	return Result[T]{e: either.Left[error, T](err)}
}

// Match calls onOk with the value of r or onErr with its error.
func Match[T, R any](r Result[T], onOk func(T) R, onErr func(error) R) R {
	return either.Match(r.e, func(err error) R {
		if err == nil {
			return onErr(errZeroResult)
		}
		return onErr(err)
	}, onOk)
}

// Map applies f to the value of a successful result.
func Map[T, R any](r Result[T], f func(T) R) Result[R] {
	return Result[R]{e: either.Map(r.e, f)}
}

// Value returns the value of r as an option.
func (r Result[T]) Value() option.Option[T] {
	return r.e.Right()
}

// Err returns the error of r, or nil.
func (r Result[T]) Err() error {
	return Match(r,
		func(T) error { return nil },
		symmetry.Identity[error])
}

// IsOk is true for a successful result.
func (r Result[T]) IsOk() bool {
	return r.e.IsRight()
}

// Either views r as an either.Either.
func (r Result[T]) Either() either.Either[error, T] {
	return r.e
}

// String renders r as "Ok(v)" or "Err(msg)".
func (r Result[T]) String() string {
	return Match(r,
		func(v T) string { return fmt.Sprintf("Ok(%v)", v) },
		func(err error) string { return fmt.Sprintf("Err(%s)", err.Error()) })
}

// --- Matching --------------------------------------------------------------

// Cases returns a matcher for use in switch statements:
//
//	switch m := r.Cases(); m {
//	case m.Ok(&v):
//	    …
//	case m.Err(&err):
//	    …
//	}
//
func (r Result[T]) Cases() Matcher[T] {
	return &matcher[T]{r: r}
}

type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r Result[T]
}

func (rm *matcher[T]) Ok(v *T) Matcher[T] {
	return Match(rm.r,
		func(x T) Matcher[T] {
			*v = x
			return rm
		},
		func(error) Matcher[T] { return nil })
}

func (rm *matcher[T]) Err(err *error) Matcher[T] {
	return Match(rm.r,
		func(T) Matcher[T] { return nil },
		func(e error) Matcher[T] {
			*err = e
			return rm
		})
}
