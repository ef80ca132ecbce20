package lazy

import (
	"errors"
	"fmt"
	"sync"

	"github.com/npillmayer/symmetry/option"
	"github.com/npillmayer/symmetry/result"
)

// ErrForceFailed is wrapped by errors returned from TryForce.
var ErrForceFailed = errors.New("lazy: constructor failed")

// Lazy is a memoizing cell. Lazy cells must not be copied after creation.
type Lazy[T any] struct {
	mx          sync.Mutex
	constructor func() T
	value       option.Option[forced[T]] // None = unforced
}

// forced boxes a result, as T may well be nil.
type forced[T any] struct {
	v T
}

// New creates an unforced cell. constructor will not be called before the
// first call to Force.
func New[T any](constructor func() T) *Lazy[T] {
	return &Lazy[T]{constructor: constructor}
}

// Force returns the value of the cell, calling the constructor if the cell has
// not been forced yet. A constructor must not force its own cell.
func (l *Lazy[T]) Force() T {
	l.mx.Lock()
	defer l.mx.Unlock()
	return option.Match(l.value,
		func(f forced[T]) T {
			return f.v
		},
		func() T {
			tracer().Debugf("forcing lazy cell %p", l)
			v := l.constructor()
			l.value = option.Some(forced[T]{v: v})
			return v
		})
}

// TryForce is like Force, but recovers from a panicking constructor and
// returns the panic as an error wrapping ErrForceFailed. The cell remains
// unforced in this case.
func (l *Lazy[T]) TryForce() (r result.Result[T]) {
	defer func() {
		if x := recover(); x != nil {
			tracer().Debugf("constructor of lazy cell %p failed: %v", l, x)
			if err, ok := x.(error); ok {
				r = result.Err[T](fmt.Errorf("%w: %w", ErrForceFailed, err))
				return
			}
			r = result.Err[T](fmt.Errorf("%w: %v", ErrForceFailed, x))
		}
	}()
	return result.Ok(l.Force())
}

// IsForced is true if the cell holds a cached value.
func (l *Lazy[T]) IsForced() bool {
	l.mx.Lock()
	defer l.mx.Unlock()
	return l.value.IsSome()
}

// Map returns a new unforced cell. Forcing it forces l, then applies f.
func Map[T, R any](l *Lazy[T], f func(T) R) *Lazy[R] {
	return New(func() R {
		return f(l.Force())
	})
}

func (l *Lazy[T]) String() string {
	l.mx.Lock()
	defer l.mx.Unlock()
	return option.Match(l.value,
		func(f forced[T]) string { return fmt.Sprintf("Forced(%v)", f.v) },
		func() string { return "Unforced" })
}
