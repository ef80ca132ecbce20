package option

import "github.com/samber/mo"

// FromMo converts an option of package github.com/samber/mo.
// A present nil value converts to None.
func FromMo[T any](m mo.Option[T]) Option[T] {
	if v, ok := m.Get(); ok {
		return Create(v)
	}
	return None[T]()
}

// ToMo converts o to an option of package github.com/samber/mo.
func (o Option[T]) ToMo() mo.Option[T] {
	return Match(o, mo.Some[T], mo.None[T])
}
