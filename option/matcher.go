package option

// --- Matching --------------------------------------------------------------

// Cases returns a matcher for use in switch statements:
//
//	var v int
//	switch m := x.Cases(); m {
//	case m.Some(&v):
//	    …
//	case m.None():
//	    …
//	}
//
// Exactly one of the cases will equal m, for non-comparable T as well.
func (o Option[T]) Cases() Matcher[T] {
	return &matcher[T]{o: o}
}

type Matcher[T any] interface {
	Some(*T) Matcher[T]
	None() Matcher[T]
}

type matcher[T any] struct {
	o Option[T]
}

func (mm *matcher[T]) Some(v *T) Matcher[T] {
	return Match(mm.o,
		func(x T) Matcher[T] {
			*v = x
			return mm
		},
		func() Matcher[T] { return nil })
}

func (mm *matcher[T]) None() Matcher[T] {
	return Match(mm.o,
		func(T) Matcher[T] { return nil },
		func() Matcher[T] { return mm })
}
