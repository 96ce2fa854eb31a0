package aggregate

import "errors"

// Sentinel kinds for aggregation errors.
var (
	ErrInvalidLimit = errors.New("invalid ranking limit")
)
