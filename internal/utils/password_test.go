package utils

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_Roundtrip(t *testing.T) {
	hash, err := HashPassword("correct horse", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "correct horse" {
		t.Fatal("hash must not equal the plaintext password")
	}
	if !VerifyPassword(hash, "correct horse") {
		t.Error("expected password to verify against its own hash")
	}
	if VerifyPassword(hash, "wrong password") {
		t.Error("expected verification to fail for a different password")
	}
}

func TestHashPassword_CostFallback(t *testing.T) {
	hash, err := HashPassword("secret-pass", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// bcrypt hashes embed the cost: $2a$10$... for DefaultCost.
	if !strings.HasPrefix(hash, "$2a$10$") {
		t.Errorf("expected DefaultCost hash prefix, got: %s", hash[:7])
	}
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	first, err := HashPassword("same password", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := HashPassword("same password", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == second {
		t.Error("two hashes of the same password must differ (random salt)")
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	if VerifyPassword("not-a-bcrypt-hash", "anything") {
		t.Error("expected verification to fail for malformed hash")
	}
}
