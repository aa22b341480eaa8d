package installation

import (
	"context"

	"github-event-bridge/pkg/ghapp"
	"github-event-bridge/pkg/log"
)

// TokenIssuer mints installation access tokens via the GitHub API,
// authenticated as the App. Implemented by pkg/ghapp.Client.
type TokenIssuer interface {
	CreateInstallationAccessToken(ctx context.Context, installationID int64) (ghapp.InstallationToken, error)
}

// Handler reacts to App installation events.
type Handler struct {
	issuer TokenIssuer
	l      log.Logger
}

// New creates a new installation Handler.
func New(issuer TokenIssuer, l log.Logger) *Handler {
	return &Handler{
		issuer: issuer,
		l:      l,
	}
}
