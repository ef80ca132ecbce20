/*
Package option implements an optional value, a type which either holds a
value (Some) or nothing (None). Options replace nil as a marker for
“no value”.

	x := option.Some(7)
	y := option.None[int]()
	s := option.Match(x,
	    func(n int) string { return strconv.Itoa(n) },
	    func() string { return "nothing" })

Match is the single primitive to extract a value from an option. All other
operations are expressed in terms of it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package option

import (
	"fmt"
	"reflect"

	"github.com/npillmayer/symmetry"
)

// Option is either Some(value) or None. The zero value is None, thus None
// is shared by all options of a type and never allocated.
// Options are immutable.
type Option[T any] struct {
	value T
	some  bool
}

// Some wraps a value. It panics with an error wrapping symmetry.ErrInvalidState
// if v is nil (for pointers, interfaces, maps, channels and functions).
// Use Create if v may be nil.
func Some[T any](v T) Option[T] {
	if isAbsent(v) {
		panic(fmt.Errorf("%w: option.Some called with nil %T", symmetry.ErrInvalidState, v))
	}
	return Option[T]{value: v, some: true}
}

// Create returns None if v is nil, Some(v) otherwise.
func Create[T any](v T) Option[T] {
	if isAbsent(v) {
		return None[T]()
	}
	return Option[T]{value: v, some: true}
}

// None returns the empty option for T.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Match calls onSome with the value of o, if present, and onNone otherwise.
func Match[T, R any](o Option[T], onSome func(T) R, onNone func() R) R {
	if o.some {
		return onSome(o.value)
	}
	return onNone()
}

// Map returns Some(f(v)) for Some(v) and None for None.
func Map[T, R any](o Option[T], f func(T) R) Option[R] {
	return Match(o,
		func(v T) Option[R] { return Some(f(v)) },
		None[R])
}

// Bind returns f(v) for Some(v) and None for None.
func Bind[T, R any](o Option[T], f func(T) Option[R]) Option[R] {
	return Match(o, f, None[R])
}

// Map is the type-preserving variant of package-level Map.
func (o Option[T]) Map(f func(T) T) Option[T] {
	return Map(o, f)
}

// Exit returns the value of o or, for None, the result of onNone.
func (o Option[T]) Exit(onNone func() T) T {
	return Match(o, symmetry.Identity[T], onNone)
}

// Escape is an alias for Exit.
func (o Option[T]) Escape(onNone func() T) T {
	return o.Exit(onNone)
}

// WithDefault returns the value of o or def, if o is None.
func (o Option[T]) WithDefault(def T) T {
	return o.Exit(symmetry.Const(def))
}

// Get returns the value of o and true, or the zero value of T and false.
func (o Option[T]) Get() (T, bool) {
	var zero T
	return Match(o,
		func(v T) T { return v },
		symmetry.Const(zero)), o.IsSome()
}

// IsSome is true if o holds a value.
func (o Option[T]) IsSome() bool {
	return Match(o,
		func(T) bool { return true },
		symmetry.Const(false))
}

// IsNone is true if o is None.
func (o Option[T]) IsNone() bool {
	return !o.IsSome()
}

func (o Option[T]) String() string {
	return Match(o,
		func(v T) string { return fmt.Sprintf("Some(%v)", v) },
		symmetry.Const("None"))
}

// Equal compares two options of comparable type.
func Equal[T comparable](a, b Option[T]) bool {
	return EqualBy(a, b, func(x, y T) bool { return x == y })
}

// EqualBy compares two options, using eq to compare payloads.
// Two options are equal if both are None or both are Some with equal payloads.
func EqualBy[T any](a, b Option[T], eq func(T, T) bool) bool {
	return Match(a,
		func(x T) bool {
			return Match(b,
				func(y T) bool { return eq(x, y) },
				symmetry.Const(false))
		},
		func() bool { return b.IsNone() })
}

// --- Helpers ---------------------------------------------------------------

func isAbsent[T any](v T) bool {
	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Chan,
		reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
