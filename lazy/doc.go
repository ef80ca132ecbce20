/*
Package lazy implements memoizing cells for deferred computations.

A cell is created with a constructor function, which is not called before the
cell is forced for the first time. The result is cached and every subsequent
force returns it, without calling the constructor again. Forcing is safe for
concurrent use: the constructor runs at most once per cell.

	cell := lazy.New(func() int { return expensive() })
	v := cell.Force()   // calls expensive()
	w := cell.Force()   // cached

A constructor which panics leaves the cell unforced, and the next force will
call the constructor again. TryForce reports such a failure as a result.Err
instead of propagating the panic.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lazy

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'symmetry.lazy'.
func tracer() tracing.Trace {
	return tracing.Select("symmetry.lazy")
}
