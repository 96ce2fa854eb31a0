package report

import "errors"

// Sentinel error kinds for this package, so callers can errors.Is.
var (
	ErrRenderPDF = errors.New("render pdf failed")
)
