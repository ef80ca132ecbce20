package union

// Of4 is a union of four cases.
type Of4[T1, T2, T3, T4 any] struct {
	tag uint8 // 0 = case 1
	v1  T1
	v2  T2
	v3  T3
	v4  T4
}

// Case1Of4 creates a union populated with case 1.
func Case1Of4[T1, T2, T3, T4 any](v T1) Of4[T1, T2, T3, T4] {
	return Of4[T1, T2, T3, T4]{v1: v}
}

// Case2Of4 creates a union populated with case 2.
func Case2Of4[T1, T2, T3, T4 any](v T2) Of4[T1, T2, T3, T4] {
	return Of4[T1, T2, T3, T4]{tag: 1, v2: v}
}

// Case3Of4 creates a union populated with case 3.
func Case3Of4[T1, T2, T3, T4 any](v T3) Of4[T1, T2, T3, T4] {
	return Of4[T1, T2, T3, T4]{tag: 2, v3: v}
}

// Case4Of4 creates a union populated with case 4.
func Case4Of4[T1, T2, T3, T4 any](v T4) Of4[T1, T2, T3, T4] {
	return Of4[T1, T2, T3, T4]{tag: 3, v4: v}
}

// From4 selects the case by the dynamic type of v.
func From4[T1, T2, T3, T4 any](v any) (Of4[T1, T2, T3, T4], error) {
	x1, ok1 := v.(T1)
	x2, ok2 := v.(T2)
	x3, ok3 := v.(T3)
	x4, ok4 := v.(T4)
	switch count(ok1, ok2, ok3, ok4) {
	case 0:
		return Of4[T1, T2, T3, T4]{}, nomatch[Of4[T1, T2, T3, T4]](v)
	case 1:
		switch {
		case ok1:
			return Case1Of4[T1, T2, T3, T4](x1), nil
		case ok2:
			return Case2Of4[T1, T2, T3, T4](x2), nil
		case ok3:
			return Case3Of4[T1, T2, T3, T4](x3), nil
		}
		return Case4Of4[T1, T2, T3](x4), nil
	}
	return Of4[T1, T2, T3, T4]{}, ambiguous[Of4[T1, T2, T3, T4]](v)
}

// Match4 calls the handler for the populated case of u.
func Match4[T1, T2, T3, T4, R any](u Of4[T1, T2, T3, T4],
	on1 func(T1) R, on2 func(T2) R, on3 func(T3) R, on4 func(T4) R) R {
	//
	switch u.tag {
	case 1:
		return on2(u.v2)
	case 2:
		return on3(u.v3)
	case 3:
		return on4(u.v4)
	}
	return on1(u.v1)
}

// Switch is like Match4, for handlers without a result.
func (u Of4[T1, T2, T3, T4]) Switch(on1 func(T1), on2 func(T2), on3 func(T3), on4 func(T4)) {
	Match4(u, unit(on1), unit(on2), unit(on3), unit(on4))
}

func (u Of4[T1, T2, T3, T4]) String() string {
	return Match4(u, caseString[T1](1), caseString[T2](2), caseString[T3](3), caseString[T4](4))
}
