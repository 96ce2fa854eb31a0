package normalize

import "errors"

// Sentinel kinds for invalid-input conditions. These abort evaluation of
// the offending record only; out-of-domain numerics are clamped instead.
var (
	ErrMissingID         = errors.New("missing employee id")
	ErrMissingDepartment = errors.New("missing department")
)
