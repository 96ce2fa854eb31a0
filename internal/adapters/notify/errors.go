package notify

import "errors"

// Sentinel error kinds for this package, so callers can errors.Is.
var (
	ErrMissingRecipient = errors.New("missing recipient address")
	ErrSendEmail        = errors.New("send email failed")
)
