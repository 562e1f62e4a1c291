// Package signature implements the shared-secret authentication scheme for
// webhook deliveries: an HMAC-SHA256 digest of the raw request body,
// base64-encoded, carried in the X-Webhook-Signature header.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
)

// Sign computes the base64-encoded HMAC-SHA256 digest of body under secret.
func Sign(body, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Verify reports whether provided authenticates body. The digest is
// recomputed over the exact raw bytes received and compared in constant
// time. A missing or undecodable header and an empty secret all verify
// false. Verify never panics; callers must not parse body until it passes.
func Verify(body []byte, provided string, secret []byte) bool {
	if len(secret) == 0 {
		return false
	}
	provided = strings.TrimSpace(provided)
	if provided == "" {
		return false
	}
	claimed, err := base64.StdEncoding.DecodeString(provided)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return hmac.Equal(claimed, mac.Sum(nil))
}
