package symmetry

import "errors"

// ErrInvalidState is raised if a value is constructed from an illegal input,
// e.g. wrapping nil as option.Some.
var ErrInvalidState = errors.New("invalid state")

// ErrInvalidAccess is raised if a cursor is read before it has been advanced,
// or after it has been exhausted.
var ErrInvalidAccess = errors.New("invalid access")

// ErrAmbiguousCase is returned if a value could populate more than one case
// of a union. Clients have to use an explicit case constructor then.
var ErrAmbiguousCase = errors.New("ambiguous union case")

// ErrNoMatchingCase is returned if a value does not fit any case of a union.
var ErrNoMatchingCase = errors.New("no matching union case")
