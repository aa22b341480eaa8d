package installation

import "errors"

// Domain-specific errors for the installation package.
var (
	ErrMissingInstallationID = errors.New("installation id missing from payload")
)
