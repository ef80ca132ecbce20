package option_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/npillmayer/symmetry"
	. "github.com/npillmayer/symmetry/option"
	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionConstructors(t *testing.T) {
	hello := "Hello"
	a := Some(hello)
	b := Create(&hello)
	c := Create[*string](nil)
	d := None[string]()
	assert.True(t, a.IsSome())
	assert.True(t, b.IsSome())
	assert.False(t, c.IsSome())
	assert.False(t, d.IsSome())
	assert.True(t, d.IsNone())
}

func TestOptionSomeOfNil(t *testing.T) {
	var err error
	func() {
		defer func() {
			err, _ = recover().(error)
		}()
		Some[*int](nil)
	}()
	if !errors.Is(err, symmetry.ErrInvalidState) {
		t.Errorf("expected Some(nil) to panic with invalid state, got %v", err)
	}
	var e error
	assert.True(t, Create(e).IsNone(), "nil interface should be None")
	var s []int
	assert.True(t, Some(s).IsSome(), "nil slice is a legal value")
}

func TestOptionNoneIsShared(t *testing.T) {
	assert.Equal(t, None[int](), None[int]())
	assert.True(t, Equal(None[int](), None[int]()))
}

func TestOptionMatch(t *testing.T) {
	show := func(o Option[int]) string {
		return Match(o, strconv.Itoa, func() string { return "nothing" })
	}
	assert.Equal(t, "7", show(Some(7)))
	assert.Equal(t, "nothing", show(None[int]()))
}

func TestOptionCases(t *testing.T) {
	x := Some(7)
	var v int
	switch m := x.Cases(); m {
	case m.Some(&v):
		t.Logf("Some(%d)", v)
	case m.None():
		t.Error("expected Some(7) to match Some case")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}
	var w []int
	switch m := None[[]int]().Cases(); m {
	case m.Some(&w):
		t.Error("expected None to match None case")
	case m.None():
	}
	if w != nil {
		t.Errorf("expected w to be untouched, is %#v", w)
	}
}

func TestOptionMap(t *testing.T) {
	double := func(n int) int { return n * 2 }
	assert.Equal(t, Some(14), Some(7).Map(double))
	assert.Equal(t, None[int](), None[int]().Map(double))
	s := Map(Some(10), strconv.Itoa)
	assert.Equal(t, "Some(10)", s.String())
	assert.Equal(t, "None", Map(None[int](), strconv.Itoa).String())
}

func TestOptionBind(t *testing.T) {
	gt0 := func(n int) Option[bool] {
		if n > 0 {
			return Some(true)
		}
		return None[bool]()
	}
	assert.True(t, Bind(Some(7), gt0).WithDefault(false))
	assert.True(t, Bind(Some(-7), gt0).IsNone())
	assert.True(t, Bind(None[int](), gt0).IsNone())
}

func TestOptionExit(t *testing.T) {
	calls := 0
	fallback := func() int {
		calls++
		return 100
	}
	assert.Equal(t, 7, Some(7).Exit(fallback))
	assert.Equal(t, 0, calls, "fallback must not be called for Some")
	assert.Equal(t, 100, None[int]().Escape(fallback))
	assert.Equal(t, 1, calls)
	v, ok := None[int]().Get()
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestOptionEquality(t *testing.T) {
	assert.True(t, Equal(Some(3), Some(3)))
	assert.False(t, Equal(Some(3), Some(4)))
	assert.False(t, Equal(Some(3), None[int]()))
	assert.False(t, Equal(None[int](), Some(3)))
	always := func(_, _ []int) bool { return true }
	assert.True(t, EqualBy(Some([]int{1}), Some([]int{2}), always))
	assert.False(t, EqualBy(Some([]int{1}), None[[]int](), always))
}

func TestOptionEnumerable(t *testing.T) {
	none := None[int]()
	assert.Equal(t, 0, symmetry.Count(none.All()))
	assert.Equal(t, 0, symmetry.Fold(none.All(), 0, func(sum, x int) int { return sum + x }))
	some := Some(3)
	assert.Equal(t, 1, symmetry.Count(some.All()))
	assert.Equal(t, 3, symmetry.Fold(some.All(), 0, func(sum, x int) int { return sum + x }))
	assert.Equal(t, 3, symmetry.Sum(some.All()))
	n := 0
	for x := range some.All() { // restartable
		n += x
	}
	for x := range some.All() {
		n += x
	}
	assert.Equal(t, 6, n)
}

func TestOptionCursor(t *testing.T) {
	c := Some(3).Cursor()
	require.PanicsWithError(t, "invalid access: option cursor not positioned on a value", func() {
		c.Current()
	})
	require.True(t, c.Next())
	assert.Equal(t, 3, c.Current())
	assert.False(t, c.Next())
	assert.Panics(t, func() { c.Current() })
	c.Reset()
	require.True(t, c.Next())
	assert.Equal(t, 3, c.Current())
	assert.False(t, None[int]().Cursor().Next())
}

func TestOptionMoInterop(t *testing.T) {
	assert.Equal(t, Some(5), FromMo(mo.Some(5)))
	assert.True(t, FromMo(mo.None[int]()).IsNone())
	v, ok := Some("x").ToMo().Get()
	assert.True(t, ok)
	assert.Equal(t, "x", v)
	assert.True(t, None[string]().ToMo().IsAbsent())
	assert.True(t, FromMo(mo.Some[*int](nil)).IsNone(), "nil must not become Some")
	var e error
	assert.True(t, FromMo(mo.Some(e)).IsNone())
}
