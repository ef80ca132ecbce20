package union

import (
	"fmt"
	"iter"

	"github.com/npillmayer/symmetry"
	"github.com/npillmayer/symmetry/option"
)

// Of2 is a union of two cases.
type Of2[T1, T2 any] struct {
	tag uint8 // 0 = case 1
	v1  T1
	v2  T2
}

// Case1Of2 creates a union populated with case 1.
func Case1Of2[T1, T2 any](v T1) Of2[T1, T2] {
	return Of2[T1, T2]{v1: v}
}

// Case2Of2 creates a union populated with case 2.
func Case2Of2[T1, T2 any](v T2) Of2[T1, T2] {
	return Of2[T1, T2]{tag: 1, v2: v}
}

// From2 selects the case by the dynamic type of v.
func From2[T1, T2 any](v any) (Of2[T1, T2], error) {
	x1, ok1 := v.(T1)
	x2, ok2 := v.(T2)
	switch {
	case ok1 && ok2:
		return Of2[T1, T2]{}, ambiguous[Of2[T1, T2]](v)
	case ok1:
		return Case1Of2[T1, T2](x1), nil
	case ok2:
		return Case2Of2[T1](x2), nil
	}
	return Of2[T1, T2]{}, nomatch[Of2[T1, T2]](v)
}

// Match2 calls the handler for the populated case of u.
func Match2[T1, T2, R any](u Of2[T1, T2], on1 func(T1) R, on2 func(T2) R) R {
	if u.tag == 1 {
		return on2(u.v2)
	}
	return on1(u.v1)
}

// Switch is like Match2, for handlers without a result.
func (u Of2[T1, T2]) Switch(on1 func(T1), on2 func(T2)) {
	Match2(u, unit(on1), unit(on2))
}

// Left projects u to its first case. A nil payload projects to None.
func (u Of2[T1, T2]) Left() option.Option[T1] {
	return Match2(u, option.Create[T1], ignore[T2, option.Option[T1]])
}

// Right projects u to its second case.
func (u Of2[T1, T2]) Right() option.Option[T2] {
	return Match2(u, ignore[T1, option.Option[T2]], option.Create[T2])
}

// Lefts returns an iterator over the first case of u, if populated.
func (u Of2[T1, T2]) Lefts() iter.Seq[T1] {
	return u.Left().All()
}

// Rights returns an iterator over the second case of u, if populated.
func (u Of2[T1, T2]) Rights() iter.Seq[T2] {
	return u.Right().All()
}

func (u Of2[T1, T2]) String() string {
	return Match2(u, caseString[T1](1), caseString[T2](2))
}

// --- Helpers ---------------------------------------------------------------

func ignore[T any, R any](T) R {
	var r R
	return r
}

func caseString[T any](k int) func(T) string {
	return func(v T) string {
		return fmt.Sprintf("Case%d(%v)", k, v)
	}
}

func ambiguous[U any](v any) error {
	var u U
	return fmt.Errorf("%w: %T fits more than one case of %T", symmetry.ErrAmbiguousCase, v, u)
}

func nomatch[U any](v any) error {
	var u U
	return fmt.Errorf("%w: %T fits no case of %T", symmetry.ErrNoMatchingCase, v, u)
}
