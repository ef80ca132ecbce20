/*
Package symmetry provides small algebraic data types for Go: a unit type,
options, tagged unions, memoizing lazy cells and a persistent singly linked
list. Sub-packages hold the individual types; this package holds what they
share: the unit type, the iteration contract and the error taxonomy.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package symmetry

// Unit is a type with a single value. It acts as a placeholder where a value
// is required but there is nothing to say, e.g. Option[Unit] or a Union case
// without payload. All Unit values are equal.
type Unit struct{}

// The is the one value of type Unit.
var The = Unit{}

// Equal is true for every pair of Units.
func (Unit) Equal(Unit) bool {
	return true
}

func (Unit) String() string {
	return "()"
}

// Ignore returns unit for any input.
func Ignore[T any](_ T) Unit {
	return The
}

// Identity returns its argument.
func Identity[T any](a T) T {
	return a
}

// Const returns a function that produces a.
func Const[T any](a T) func() T {
	return func() T {
		return a
	}
}

// Compose returns h = f . g
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}
