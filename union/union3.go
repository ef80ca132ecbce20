package union

import "github.com/npillmayer/symmetry"

// Of3 is a union of three cases.
type Of3[T1, T2, T3 any] struct {
	tag uint8 // 0 = case 1
	v1  T1
	v2  T2
	v3  T3
}

// Case1Of3 creates a union populated with case 1.
func Case1Of3[T1, T2, T3 any](v T1) Of3[T1, T2, T3] {
	return Of3[T1, T2, T3]{v1: v}
}

// Case2Of3 creates a union populated with case 2.
func Case2Of3[T1, T2, T3 any](v T2) Of3[T1, T2, T3] {
	return Of3[T1, T2, T3]{tag: 1, v2: v}
}

// Case3Of3 creates a union populated with case 3.
func Case3Of3[T1, T2, T3 any](v T3) Of3[T1, T2, T3] {
	return Of3[T1, T2, T3]{tag: 2, v3: v}
}

// From3 selects the case by the dynamic type of v.
func From3[T1, T2, T3 any](v any) (Of3[T1, T2, T3], error) {
	x1, ok1 := v.(T1)
	x2, ok2 := v.(T2)
	x3, ok3 := v.(T3)
	switch count(ok1, ok2, ok3) {
	case 0:
		return Of3[T1, T2, T3]{}, nomatch[Of3[T1, T2, T3]](v)
	case 1:
		switch {
		case ok1:
			return Case1Of3[T1, T2, T3](x1), nil
		case ok2:
			return Case2Of3[T1, T2, T3](x2), nil
		}
		return Case3Of3[T1, T2](x3), nil
	}
	return Of3[T1, T2, T3]{}, ambiguous[Of3[T1, T2, T3]](v)
}

// Match3 calls the handler for the populated case of u.
func Match3[T1, T2, T3, R any](u Of3[T1, T2, T3], on1 func(T1) R, on2 func(T2) R, on3 func(T3) R) R {
	switch u.tag {
	case 1:
		return on2(u.v2)
	case 2:
		return on3(u.v3)
	}
	return on1(u.v1)
}

// Switch is like Match3, for handlers without a result.
func (u Of3[T1, T2, T3]) Switch(on1 func(T1), on2 func(T2), on3 func(T3)) {
	Match3(u, unit(on1), unit(on2), unit(on3))
}

func (u Of3[T1, T2, T3]) String() string {
	return Match3(u, caseString[T1](1), caseString[T2](2), caseString[T3](3))
}

func unit[T any](f func(T)) func(T) symmetry.Unit {
	return func(v T) symmetry.Unit {
		f(v)
		return symmetry.The
	}
}

func count(oks ...bool) int {
	n := 0
	for _, ok := range oks {
		if ok {
			n++
		}
	}
	return n
}
