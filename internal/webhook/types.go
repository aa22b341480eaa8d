package webhook

import "time"

// SecurityConfig holds webhook security settings
type SecurityConfig struct {
	Secret          string   // Shared secret for signature verification
	AllowedIPs      []string // IP whitelist (optional)
	RateLimitPerMin int      // Max requests per minute
}

// Config holds all webhook handler settings.
type Config struct {
	Security SecurityConfig
	// DedupTTL is the window during which a redelivered delivery id is
	// acknowledged without being dispatched again.
	DedupTTL time.Duration
}
