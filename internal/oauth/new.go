package oauth

import (
	"strings"

	"golang.org/x/oauth2"
	oauthgithub "golang.org/x/oauth2/github"

	"github-event-bridge/pkg/log"
)

// CallbackPath is where GitHub sends the user back with the authorization code.
const CallbackPath = "/oauth/callback"

// Handler implements the two-step authorization-code flow: redirect to
// GitHub's authorize endpoint, then exchange the returned code for a token.
// No server-side state is kept between the two steps.
type Handler struct {
	oauth *oauth2.Config
	l     log.Logger
}

// New creates a new OAuth Handler.
func New(cfg Config, l log.Logger) *Handler {
	return &Handler{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     oauthgithub.Endpoint,
			RedirectURL:  strings.TrimSuffix(cfg.ExternalURL, "/") + CallbackPath,
		},
		l: l,
	}
}

// SetEndpoint overrides the authorize/token endpoints for testing purposes.
func (h *Handler) SetEndpoint(endpoint oauth2.Endpoint) {
	h.oauth.Endpoint = endpoint
}
