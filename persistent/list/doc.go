/*
Package list implements an immutable persistent singly linked list.

A list is either empty or a cell holding a head element and a tail list.
Prepending an element (Cons) allocates a single cell and shares the tail with
the original list, so any number of lists may share a common suffix:

	base := list.Of(2, 3)
	a := list.Cons(1, base)   // 1 2 3
	b := list.Cons(0, base)   // 0 2 3, sharing 2 3 with a

Lists are never modified in place. Map, Filter and Bind build new cells for the
traversed elements. As cells are never mutated after construction, lists are
safe for concurrent use without synchronization.

Each cell caches the length of the list it starts, thus Length is O(1).
Left folds, equality tests and iteration are loops over the cells, right folds
and bulk construction work on a materialized slice. No operation recurses
proportionally to the length of a list.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package list

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'symmetry.list'.
func tracer() tracing.Trace {
	return tracing.Select("symmetry.list")
}
