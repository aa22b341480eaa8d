package webhook_test

import (
	"net/http/httptest"
	"testing"

	"github-event-bridge/internal/webhook"
)

func TestValidSignature(t *testing.T) {
	secret := "It's a Secret to Everybody"
	payload := []byte(`{"action":"created","installation":{"id":1}}`)

	t.Run("sign then verify round-trips", func(t *testing.T) {
		sig := webhook.Sign(payload, secret)
		if !webhook.ValidSignature(payload, sig, secret) {
			t.Errorf("valid signature rejected")
		}
	})

	t.Run("any single-byte mutation invalidates", func(t *testing.T) {
		sig := webhook.Sign(payload, secret)
		for i := range payload {
			mutated := make([]byte, len(payload))
			copy(mutated, payload)
			mutated[i] ^= 0x01
			if webhook.ValidSignature(mutated, sig, secret) {
				t.Fatalf("mutation at byte %d accepted", i)
			}
		}
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		sig := webhook.Sign(payload, secret)
		if webhook.ValidSignature(payload, sig, "other secret") {
			t.Errorf("signature accepted under wrong secret")
		}
	})

	t.Run("missing or malformed header rejected", func(t *testing.T) {
		cases := map[string]string{
			"empty":        "",
			"no prefix":    "deadbeef",
			"sha1 prefix":  "sha1=deadbeef",
			"bad hex":      "sha256=zzzz",
			"prefix only":  "sha256=",
			"wrong length": "sha256=dead",
		}
		for name, sig := range cases {
			if name == "prefix only" || name == "wrong length" {
				// decodes fine as hex but must still mismatch
				if webhook.ValidSignature(payload, sig, secret) {
					t.Errorf("%s: accepted", name)
				}
				continue
			}
			if webhook.ValidSignature(payload, sig, secret) {
				t.Errorf("%s: accepted", name)
			}
		}
	})

	t.Run("empty secret rejected", func(t *testing.T) {
		sig := webhook.Sign(payload, "")
		if webhook.ValidSignature(payload, sig, "") {
			t.Errorf("empty secret accepted")
		}
	})
}

func TestSecurityValidator(t *testing.T) {
	t.Run("signature via validator", func(t *testing.T) {
		v := webhook.NewSecurityValidator(webhook.SecurityConfig{Secret: "s", RateLimitPerMin: 60})
		payload := []byte(`{}`)
		if err := v.ValidateSignature(payload, webhook.Sign(payload, "s")); err != nil {
			t.Errorf("valid signature rejected: %v", err)
		}
		if err := v.ValidateSignature(payload, webhook.Sign(payload, "wrong")); err == nil {
			t.Errorf("invalid signature accepted")
		}
	})

	t.Run("unconfigured secret always errors", func(t *testing.T) {
		v := webhook.NewSecurityValidator(webhook.SecurityConfig{RateLimitPerMin: 60})
		if err := v.ValidateSignature([]byte(`{}`), webhook.Sign([]byte(`{}`), "")); err == nil {
			t.Errorf("expected error with no secret configured")
		}
	})

	t.Run("ip allowlist", func(t *testing.T) {
		v := webhook.NewSecurityValidator(webhook.SecurityConfig{
			Secret:          "s",
			AllowedIPs:      []string{"140.82.112.1", "192.30.252.0/22"},
			RateLimitPerMin: 60,
		})

		req := httptest.NewRequest("POST", "/github/webhooks", nil)
		req.Header.Set("X-Forwarded-For", "140.82.112.1")
		if err := v.ValidateIPAddress(req); err != nil {
			t.Errorf("allowlisted IP rejected: %v", err)
		}

		req.Header.Set("X-Forwarded-For", "192.30.253.7")
		if err := v.ValidateIPAddress(req); err != nil {
			t.Errorf("IP inside CIDR rejected: %v", err)
		}

		req.Header.Set("X-Forwarded-For", "203.0.113.9")
		if err := v.ValidateIPAddress(req); err == nil {
			t.Errorf("unlisted IP accepted")
		}
	})

	t.Run("empty allowlist admits everyone", func(t *testing.T) {
		v := webhook.NewSecurityValidator(webhook.SecurityConfig{Secret: "s", RateLimitPerMin: 60})
		req := httptest.NewRequest("POST", "/github/webhooks", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.9")
		if err := v.ValidateIPAddress(req); err != nil {
			t.Errorf("unexpected rejection: %v", err)
		}
	})

	t.Run("rate limit kicks in after burst", func(t *testing.T) {
		// 10/min → burst of 1
		v := webhook.NewSecurityValidator(webhook.SecurityConfig{Secret: "s", RateLimitPerMin: 10})
		if err := v.CheckRateLimit("github"); err != nil {
			t.Fatalf("first request limited: %v", err)
		}
		limited := false
		for i := 0; i < 5; i++ {
			if v.CheckRateLimit("github") != nil {
				limited = true
				break
			}
		}
		if !limited {
			t.Errorf("rate limit never triggered")
		}
	})
}
