package either_test

import (
	"strconv"
	"testing"

	"github.com/npillmayer/symmetry"
	"github.com/npillmayer/symmetry/either"
	"github.com/npillmayer/symmetry/union"
)

func TestEitherMatch(t *testing.T) {
	one := either.Left[int, string](1)
	two := either.Right[int]("2")
	count := func(e either.Either[int, string]) int {
		return either.Match(e, func(n int) int { return n }, Atoi)
	}
	if count(one) != 1 {
		t.Errorf("expected Left(1) to count 1, is %d", count(one))
	}
	if count(two) != 2 {
		t.Errorf("expected Right(\"2\") to count 2, is %d", count(two))
	}
}

func TestEitherString(t *testing.T) {
	if s := either.Left[int, string](1).String(); s != "Left(1)" {
		t.Errorf("expected Left(1), got %q", s)
	}
	if s := either.Right[int]("x").String(); s != "Right(x)" {
		t.Errorf("expected Right(x), got %q", s)
	}
}

func TestEitherProjection(t *testing.T) {
	e := either.Left[int, string](5)
	if v, ok := e.Left().Get(); !ok || v != 5 {
		t.Errorf("expected Left projection to be Some(5), is %v", e.Left())
	}
	if !e.Right().IsNone() {
		t.Errorf("expected Right projection of Left to be None")
	}
	if !e.IsLeft() || e.IsRight() {
		t.Error("expected Left(5) to be left")
	}
	if symmetry.Count(e.All()) != 0 {
		t.Error("expected Left to iterate zero times")
	}
}

func TestEitherMapBind(t *testing.T) {
	r := either.Map(either.Right[error]("21"), Atoi)
	if s := r.String(); s != "Right(21)" {
		t.Errorf("expected Right(21), got %s", s)
	}
	half := func(n int) either.Either[string, int] {
		if n%2 != 0 {
			return either.Left[string, int]("odd")
		}
		return either.Right[string](n / 2)
	}
	if s := either.Bind(either.Right[string](42), half).String(); s != "Right(21)" {
		t.Errorf("expected Right(21), got %s", s)
	}
	if s := either.Bind(either.Right[string](21), half).String(); s != "Left(odd)" {
		t.Errorf("expected Left(odd), got %s", s)
	}
	if s := either.Map(either.Left[string, int]("no"), strconv.Itoa).String(); s != "Left(no)" {
		t.Errorf("expected Left(no) to pass through, got %s", s)
	}
}

func TestEitherUnionView(t *testing.T) {
	u := union.Case2Of2[int]("s")
	e := either.FromUnion(u)
	if e.Union() != u {
		t.Error("expected round trip through union view to preserve value")
	}
	if e.Union().String() != "Case2(s)" {
		t.Errorf("expected union view to print as Case2(s), is %s", e.Union())
	}
}

// ---------------------------------------------------------------------------

func Atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}
