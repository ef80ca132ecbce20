package symmetry

import (
	"iter"
	"strings"
)

// Enumerator is a read-only forward cursor over a finite sequence.
//
//	c := lst.Cursor()
//	for c.Next() {
//	    fmt.Println(c.Current())
//	}
//
// Current panics with an error wrapping ErrInvalidAccess if called before
// the first call to Next or after Next returned false. Reset rewinds the
// cursor to the start of its sequence.
type Enumerator[T any] interface {
	Next() bool
	Current() T
	Reset()
}

// Enumerable is implemented by every finite sequence type of this module
// (options, lists and union projections). Each call of All starts a fresh
// iteration.
type Enumerable[T any] interface {
	All() iter.Seq[T]
	Cursor() Enumerator[T]
}

// Number is a constraint for types supporting addition with a zero value
// as neutral element.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Count returns the number of elements in seq.
func Count[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}

// Fold aggregates the elements of seq from left to right, starting with seed.
func Fold[T, A any](seq iter.Seq[T], seed A, f func(A, T) A) A {
	acc := seed
	for x := range seq {
		acc = f(acc, x)
	}
	return acc
}

// Sum adds up all elements of seq.
func Sum[N Number](seq iter.Seq[N]) N {
	return Fold(seq, N(0), func(sum, x N) N {
		return sum + x
	})
}

// Concat concatenates a sequence of strings.
func Concat(seq iter.Seq[string]) string {
	b := strings.Builder{}
	for s := range seq {
		b.WriteString(s)
	}
	return b.String()
}
