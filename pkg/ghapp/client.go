package ghapp

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v75/github"

	"github-event-bridge/pkg/log"
)

// requestTimeout bounds every GitHub API call made by the client.
const requestTimeout = 15 * time.Second

// Client calls the GitHub REST API authenticated as the App itself.
// Requests are signed with a JWT derived from the App's private key.
type Client struct {
	gh *github.Client
	l  log.Logger
}

// NewClient creates a GitHub App API client from the App id and the path to
// its PEM private key.
func NewClient(appID int64, privateKeyPath string, l log.Logger) (*Client, error) {
	transport, err := ghinstallation.NewAppsTransportKeyFromFile(http.DefaultTransport, appID, privateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load GitHub App key: %w", err)
	}

	return &Client{
		gh: github.NewClient(&http.Client{
			Transport: transport,
			Timeout:   requestTimeout,
		}),
		l: l,
	}, nil
}

// SetAPIURL overrides the GitHub API base URL for testing purposes.
func (c *Client) SetAPIURL(raw string) error {
	u, err := url.Parse(strings.TrimSuffix(raw, "/") + "/")
	if err != nil {
		return fmt.Errorf("invalid API URL: %w", err)
	}
	c.gh.BaseURL = u
	return nil
}

// CreateInstallationAccessToken requests a fresh access token scoped to the
// given installation. No retry: GitHub redelivers webhook events, so a
// failed issuance is reported and dropped.
func (c *Client) CreateInstallationAccessToken(ctx context.Context, installationID int64) (InstallationToken, error) {
	tok, _, err := c.gh.Apps.CreateInstallationToken(ctx, installationID, &github.InstallationTokenOptions{})
	if err != nil {
		return InstallationToken{}, fmt.Errorf("failed to create installation token: %w", err)
	}

	return InstallationToken{
		Token:     tok.GetToken(),
		ExpiresAt: tok.GetExpiresAt().Time,
	}, nil
}
