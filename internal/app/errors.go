package app

import "errors"

// Sentinel kinds for batch evaluation errors.
var (
	ErrDuplicateID = errors.New("duplicate employee id")
)
