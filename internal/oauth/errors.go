package oauth

import "errors"

// Domain-specific errors for the oauth package.
var (
	// ErrMissingCode means GitHub's callback arrived without a code query
	// parameter. No exchange is attempted.
	ErrMissingCode = errors.New("authorization code missing from callback")

	// ErrExchangeRejected means the token endpoint answered but refused the
	// code (expired, already used, bad credentials).
	ErrExchangeRejected = errors.New("token exchange rejected by github")

	// ErrExchangeTransport means the token endpoint could not be reached
	// (timeout, connection failure).
	ErrExchangeTransport = errors.New("token exchange transport failure")
)
