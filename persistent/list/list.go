package list

import (
	"fmt"
	"iter"
	"slices"

	"github.com/npillmayer/symmetry"
	"github.com/npillmayer/symmetry/option"
	"github.com/samber/lo"
)

// List is an immutable singly linked list. The zero value is the empty list,
// shared by all lists of element type T.
type List[T any] struct {
	first *cell[T]
}

type cell[T any] struct {
	head   T
	tail   List[T]
	length int // length of the list starting at this cell
}

// --- Constructors ----------------------------------------------------------

// Empty returns the empty list.
func Empty[T any]() List[T] {
	return List[T]{}
}

// Cons returns a new list with head prepended to tail. tail is shared, not copied.
func Cons[T any](head T, tail List[T]) List[T] {
	return List[T]{first: &cell[T]{
		head:   head,
		tail:   tail,
		length: tail.Length() + 1,
	}}
}

// Of creates a list of the given elements, in order.
func Of[T any](elements ...T) List[T] {
	return FromSlice(elements)
}

// FromSlice creates a list from the elements of a slice, in order.
func FromSlice[T any](elements []T) List[T] {
	return lo.ReduceRight(elements, func(tail List[T], x T, _ int) List[T] {
		return Cons(x, tail)
	}, Empty[T]())
}

// FromSeq creates a list from the elements of a finite sequence, in order.
// seq is consumed exactly once and buffered, so that the list may be built
// from its end.
func FromSeq[T any](seq iter.Seq[T]) List[T] {
	buf := slices.Collect(seq)
	tracer().Debugf("building list from sequence of %d elements", len(buf))
	return FromSlice(buf)
}

// FromEnumerator creates a list from the remaining elements of an enumerator.
func FromEnumerator[T any](e symmetry.Enumerator[T]) List[T] {
	var buf []T
	for e.Next() {
		buf = append(buf, e.Current())
	}
	tracer().Debugf("building list from enumerator of %d elements", len(buf))
	return FromSlice(buf)
}

// --- Matching --------------------------------------------------------------

// Match calls onCell with head and tail of l, or onEmpty if l is empty.
func Match[T, R any](l List[T], onCell func(T, List[T]) R, onEmpty func() R) R {
	if l.first == nil {
		return onEmpty()
	}
	return onCell(l.first.head, l.first.tail)
}

// --- API -------------------------------------------------------------------

// Length returns the number of elements of l in O(1).
func (l List[T]) Length() int {
	if l.first == nil {
		return 0
	}
	return l.first.length
}

// IsEmpty is true for the empty list.
func (l List[T]) IsEmpty() bool {
	return Match(l,
		func(T, List[T]) bool { return false },
		symmetry.Const(true))
}

// Head returns the first element of l, if any. A nil head yields None.
func (l List[T]) Head() option.Option[T] {
	return Match(l,
		func(hd T, _ List[T]) option.Option[T] { return option.Create(hd) },
		option.None[T])
}

// Tail returns l without its first element, if l is non-empty.
func (l List[T]) Tail() option.Option[List[T]] {
	return Match(l,
		func(_ T, tl List[T]) option.Option[List[T]] { return option.Some(tl) },
		option.None[List[T]])
}

// ToSlice returns the elements of l as a slice of length l.Length().
func (l List[T]) ToSlice() []T {
	arr := make([]T, l.Length())
	i := 0
	for x := range l.All() {
		arr[i] = x
		i++
	}
	return arr
}

// Filter returns a list of the elements of l for which p is true, in order.
func (l List[T]) Filter(p func(T) bool) List[T] {
	return FoldRight(l, Empty[T](), func(acc List[T], x T) List[T] {
		if p(x) {
			return Cons(x, acc)
		}
		return acc
	})
}

// Reverse returns the elements of l in reverse order.
func (l List[T]) Reverse() List[T] {
	return FoldLeft(l, Empty[T](), func(acc List[T], x T) List[T] {
		return Cons(x, acc)
	})
}

// Append returns the elements of l followed by the elements of other.
// other is shared as the suffix of the new list.
func (l List[T]) Append(other List[T]) List[T] {
	if other.IsEmpty() {
		return l
	}
	return FoldRight(l, other, func(acc List[T], x T) List[T] {
		return Cons(x, acc)
	})
}

// String renders the first cell only: "Cell(<head>)" or "Empty".
func (l List[T]) String() string {
	return Match(l,
		func(hd T, _ List[T]) string { return fmt.Sprintf("Cell(%v)", hd) },
		symmetry.Const("Empty"))
}
