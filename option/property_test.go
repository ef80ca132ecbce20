package option_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	. "github.com/npillmayer/symmetry/option"
)

func genOption() gopter.Gen {
	return gen.PtrOf(gen.Int()).Map(func(p *int) Option[int] {
		if p == nil {
			return None[int]()
		}
		return Some(*p)
	})
}

func TestOptionLaws(t *testing.T) {
	properties := gopter.NewProperties(nil)
	half := func(n int) Option[int] {
		if n%2 != 0 {
			return None[int]()
		}
		return Some(n / 2)
	}

	properties.Property("bind of Some is application", prop.ForAll(
		func(n int) bool {
			return Equal(Bind(Some(n), half), half(n))
		},
		gen.Int(),
	))

	properties.Property("bind with Some is identity", prop.ForAll(
		func(o Option[int]) bool {
			return Equal(Bind(o, Some[int]), o)
		},
		genOption(),
	))

	properties.Property("map agrees with bind", prop.ForAll(
		func(o Option[int]) bool {
			inc := func(n int) int { return n + 1 }
			viaBind := Bind(o, func(n int) Option[int] { return Some(inc(n)) })
			return Equal(Map(o, inc), viaBind)
		},
		genOption(),
	))

	properties.Property("iteration yields the payload only", prop.ForAll(
		func(o Option[int]) bool {
			n := 0
			for x := range o.All() {
				if x != o.WithDefault(x+1) {
					return false
				}
				n++
			}
			return (n == 1) == o.IsSome()
		},
		genOption(),
	))

	properties.TestingRun(t)
}
