package idgen

import (
	"crypto/rand"
	"fmt"
)

const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateSecureID returns prefix + "_" + length random lowercase alphanumerics.
func GenerateSecureID(prefix string, length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("id length must be positive, got %d", length)
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}

	return prefix + "_" + string(buf), nil
}

// ErrorCode returns an opaque identifier used to correlate an error response
// with its log line. It never fails; on entropy failure it falls back to a
// fixed marker.
func ErrorCode() string {
	id, err := GenerateSecureID("err", 16)
	if err != nil {
		return "err_unavailable"
	}
	return id
}
