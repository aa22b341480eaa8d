package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// signaturePrefix is how GitHub frames the HMAC in X-Hub-Signature-256.
const signaturePrefix = "sha256="

// ValidSignature reports whether signatureHeader carries a valid HMAC-SHA256
// of payload under secret. The HMAC is computed over the raw body bytes;
// verifying a re-serialized payload would be a correctness bug.
//
// Pure function. Returns false, never an error, on a missing or malformed
// header or a mismatch.
func ValidSignature(payload []byte, signatureHeader, secret string) bool {
	if signatureHeader == "" || secret == "" {
		return false
	}
	if !strings.HasPrefix(signatureHeader, signaturePrefix) {
		return false
	}

	expectedSig, err := hex.DecodeString(strings.TrimPrefix(signatureHeader, signaturePrefix))
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	actualSig := mac.Sum(nil)

	// Constant-time comparison to prevent timing attacks
	return hmac.Equal(expectedSig, actualSig)
}

// Sign computes the X-Hub-Signature-256 header value for payload. Used by
// tests and tooling that need to produce valid deliveries.
func Sign(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return signaturePrefix + hex.EncodeToString(mac.Sum(nil))
}
