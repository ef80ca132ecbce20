/*
Package union implements closed tagged unions of two, three or four cases.

A union holds exactly one of its alternatives. Values are created with
explicit case constructors and taken apart with a match function, which
calls exactly one handler: the one for the populated case.

	u := union.Case2Of2[int, string]("Hello")
	n := union.Match2(u,
	    func(i int) int { return i },
	    func(s string) int { return len(s) })

Construction from a bare value of unknown case is possible with From2, From3
and From4, which select the case by the dynamic type of the value. This
requires the case types to be distinct; a value fitting more than one case
is reported as symmetry.ErrAmbiguousCase.

The zero value of a union is its first case, holding the zero value of that
case's type.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package union
