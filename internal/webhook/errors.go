package webhook

import "errors"

// Domain-specific errors for the webhook package.
var (
	ErrMissingEvent = errors.New("missing X-GitHub-Event header")
)
