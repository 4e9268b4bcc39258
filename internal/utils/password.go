package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a one-way bcrypt hash from a plaintext password.
//
// The plaintext is never stored; only the resulting hash is persisted.
// The cost parameter selects bcrypt's work factor; values below
// bcrypt.MinCost fall back to bcrypt.DefaultCost.
//
// Returns a wrapped error if bcrypt rejects the input (e.g. a password
// longer than 72 bytes).
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
// Comparison is constant-time inside bcrypt; any error (mismatch or
// malformed hash) is reported as a simple false.
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
