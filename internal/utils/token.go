package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// tokenBytes is the entropy of a generated token key. The hex encoding
// doubles it, so every key is 64 characters long.
const tokenBytes = 32

// GenerateTokenKey returns a cryptographically random opaque token key.
//
// The value is read from crypto/rand and hex-encoded, giving 256 bits
// of entropy; collision probability is negligible, which lets the
// database enforce key uniqueness with a plain unique index.
//
// Returns a non-nil error only if the system's secure random source
// fails, which is not recoverable at this layer.
func GenerateTokenKey() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error reading random bytes for token: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
