package option

import (
	"fmt"
	"iter"

	"github.com/npillmayer/symmetry"
)

// All returns a sequence of either zero elements (None) or one element (Some).
func (o Option[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		Match(o,
			func(v T) bool { return yield(v) },
			symmetry.Const(false))
	}
}

// Cursor returns a fresh enumerator for o.
func (o Option[T]) Cursor() symmetry.Enumerator[T] {
	return &cursor[T]{source: o}
}

var _ symmetry.Enumerable[int] = Option[int]{}

type cursor[T any] struct {
	source Option[T]
	moved  bool
	done   bool
}

func (c *cursor[T]) Next() bool {
	if !c.moved {
		c.moved = true
		c.done = c.source.IsNone()
		return !c.done
	}
	c.done = true
	return false
}

func (c *cursor[T]) Current() T {
	if !c.moved || c.done {
		panic(fmt.Errorf("%w: option cursor not positioned on a value", symmetry.ErrInvalidAccess))
	}
	return Match(c.source,
		symmetry.Identity[T],
		func() T {
			panic(fmt.Errorf("%w: option cursor over None", symmetry.ErrInvalidAccess))
		})
}

func (c *cursor[T]) Reset() {
	c.moved, c.done = false, false
}
