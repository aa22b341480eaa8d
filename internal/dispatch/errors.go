package dispatch

import "errors"

// Domain-specific errors for the dispatch package.
var (
	// ErrNotVerified means the delivery reached the dispatcher without
	// passing signature verification. Distinct from a parse error.
	ErrNotVerified = errors.New("delivery signature not verified")

	// ErrMalformedPayload means the raw body is not a JSON object.
	ErrMalformedPayload = errors.New("malformed webhook payload")
)
