package submission

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
)

// Sign computes the hex-encoded HMAC-SHA256 of payload under secret.
func Sign(secret string, payload []byte) (string, error) {
	if secret == "" {
		return "", errors.New("secret cannot be empty")
	}
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// SignatureHeader formats a signature for the X-Signature-256 header.
func SignatureHeader(signature string) string {
	return "sha256=" + signature
}

// Verify reports whether provided matches the HMAC of payload under secret.
// A "sha256=" prefix on provided is accepted. Comparison is constant time.
func Verify(secret string, payload []byte, provided string) bool {
	raw, err := hex.DecodeString(strings.TrimPrefix(provided, "sha256="))
	if err != nil {
		return false
	}
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(payload)
	return hmac.Equal(raw, h.Sum(nil))
}
