package ghapp

import "time"

// InstallationToken is a short-lived access token scoped to one installation.
// Owned transiently by the handler that requested it; never persisted.
type InstallationToken struct {
	Token     string
	ExpiresAt time.Time
}
