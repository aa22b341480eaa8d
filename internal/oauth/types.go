package oauth

// Config holds the OAuth app credential pair and the public base URL used to
// build the callback.
type Config struct {
	ClientID     string
	ClientSecret string
	// ExternalURL is this deployment's public base URL; the callback route
	// is appended to it.
	ExternalURL string
}

// TokenResponse is returned to the caller after a successful exchange.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Scope       string `json:"scope"`
}
