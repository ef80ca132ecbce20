package list

import (
	"fmt"
	"iter"

	"github.com/npillmayer/symmetry"
)

// All returns an iterator over the elements of l, in order.
// Every call starts at the head of l.
func (l List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := l.first; c != nil; c = c.tail.first {
			if !yield(c.head) {
				return
			}
		}
	}
}

// Cursor returns a fresh enumerator positioned before the head of l.
func (l List[T]) Cursor() symmetry.Enumerator[T] {
	return &cursor[T]{source: l}
}

var _ symmetry.Enumerable[int] = List[int]{}

type cursor[T any] struct {
	source  List[T]
	current List[T]
	moved   bool
}

func (c *cursor[T]) Next() bool {
	if !c.moved {
		c.moved = true
		c.current = c.source
	} else if c.current.first != nil {
		c.current = c.current.first.tail
	}
	return c.current.first != nil
}

func (c *cursor[T]) Current() T {
	if !c.moved {
		panic(fmt.Errorf("%w: list cursor read before first call to Next", symmetry.ErrInvalidAccess))
	}
	return Match(c.current,
		func(hd T, _ List[T]) T { return hd },
		func() T {
			panic(fmt.Errorf("%w: list cursor is exhausted", symmetry.ErrInvalidAccess))
		})
}

func (c *cursor[T]) Reset() {
	c.moved = false
	c.current = List[T]{}
}
