package dataset

import "errors"

// Sentinel error kinds for this package, so callers can errors.Is.
var (
	ErrMissingHeader = errors.New("missing required column")
	ErrEmptyDataset  = errors.New("dataset has no data rows")
	ErrReadDataset   = errors.New("read dataset failed")
)
