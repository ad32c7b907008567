package errors

import "errors"

// Domain errors
var (
	// Target errors
	ErrEmptyTarget   = errors.New("target cannot be empty")
	ErrInvalidTarget = errors.New("invalid target")

	// Source errors
	ErrUnsupportedSource = errors.New("unsupported observation source")
	ErrUpstreamStatus    = errors.New("unexpected upstream status")
	ErrMalformedPayload  = errors.New("malformed upstream payload")
	ErrNoCertificate     = errors.New("peer presented no certificate")

	// Output errors
	ErrUnsupportedFormat = errors.New("unsupported output format")
)
