package gong

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
)

// Signer computes per-request HMAC signatures for the Gong API.
// The signature binds the request method, path, timestamp, and payload so a
// captured request cannot be replayed against a different endpoint or body.
type Signer struct {
	secret string
}

// NewSigner creates a Signer keyed with the access secret.
func NewSigner(secret string) *Signer {
	return &Signer{secret: secret}
}

// Sign computes the signature for a request.
//
// The canonical string-to-sign joins method, path, timestamp, and payload with
// newlines. The payload is the JSON-serialized request body for writes, the
// JSON-serialized query parameters for reads, or empty when the request
// carries neither. The HMAC-SHA256 digest is encoded with standard base64.
//
// Output is deterministic for identical inputs; callers must regenerate the
// timestamp per request so replayed signatures fail freshness checks upstream.
func (s *Signer) Sign(method, path, timestamp string, payload []byte) string {
	canonical := strings.Join([]string{method, path, timestamp, string(payload)}, "\n")

	mac := hmac.New(sha256.New, []byte(s.secret))
	mac.Write([]byte(canonical))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
