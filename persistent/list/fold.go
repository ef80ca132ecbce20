package list

import (
	"github.com/npillmayer/symmetry"
	"github.com/samber/lo"
)

// FoldLeft aggregates the elements of l from left to right:
//
//	f(…f(f(seed, e1), e2)…, en)
//
// FoldLeft loops over the cells of l and is safe for lists of any length.
func FoldLeft[T, A any](l List[T], seed A, f func(A, T) A) A {
	acc := seed
	for c := l.first; c != nil; c = c.tail.first {
		acc = f(acc, c.head)
	}
	return acc
}

// FoldRight aggregates the elements of l from right to left:
//
//	f(…f(f(seed, en), en-1)…, e1)
//
// l is materialized to a slice first, which is then folded back to front.
func FoldRight[T, A any](l List[T], seed A, f func(A, T) A) A {
	return lo.ReduceRight(l.ToSlice(), func(acc A, x T, _ int) A {
		return f(acc, x)
	}, seed)
}

// Map returns a list of f applied to every element of l, in order.
func Map[T, R any](l List[T], f func(T) R) List[R] {
	return FoldRight(l, Empty[R](), func(acc List[R], x T) List[R] {
		return Cons(f(x), acc)
	})
}

// Bind replaces every element of l by the list f returns for it, and
// concatenates the results in order.
func Bind[T, R any](l List[T], f func(T) List[R]) List[R] {
	return FoldRight(l, Empty[R](), func(acc List[R], x T) List[R] {
		return f(x).Append(acc)
	})
}

// Equal is true if a and b have the same length and pairwise equal elements.
func Equal[T comparable](a, b List[T]) bool {
	return EqualBy(a, b, func(x, y T) bool { return x == y })
}

// EqualBy is true if a and b have the same length and eq holds for all pairs
// of elements at the same position.
func EqualBy[T any](a, b List[T], eq func(T, T) bool) bool {
	if a.Length() != b.Length() {
		return false
	}
	for ca, cb := a.first, b.first; ca != nil; ca, cb = ca.tail.first, cb.tail.first {
		if !eq(ca.head, cb.head) {
			tracer().Debugf("lists differ at %v ≠ %v", ca.head, cb.head)
			return false
		}
	}
	return true
}

// Sum adds up the elements of l.
func Sum[N symmetry.Number](l List[N]) N {
	return SumBy(l, symmetry.Identity[N])
}

// SumBy adds up the values selector returns for the elements of l.
func SumBy[T any, N symmetry.Number](l List[T], selector func(T) N) N {
	return FoldLeft(l, N(0), func(sum N, x T) N {
		return sum + selector(x)
	})
}
