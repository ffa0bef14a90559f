// Package security holds the credential and token primitives consumed by the
// auth service and the JWT middleware.
package security

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// DefaultSaltLength is the salt size in bytes used for new accounts.
const DefaultSaltLength = 32

// SaltedHash pairs a password digest with the salt it was computed from.
// Both are hex-encoded so they can be stored as plain strings.
type SaltedHash struct {
	Hash string
	Salt string
}

// GenerateSaltedHash draws a fresh random salt of saltLength bytes and
// digests salt+value with SHA-256. Deterministic given the same salt and
// input, so Verify can recompute it.
func GenerateSaltedHash(value string, saltLength int) (SaltedHash, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return SaltedHash{}, fmt.Errorf("generate salt: %w", err)
	}
	saltHex := hex.EncodeToString(salt)
	return SaltedHash{
		Hash: hashWithSalt(value, saltHex),
		Salt: saltHex,
	}, nil
}

// Verify recomputes the digest with the stored salt and compares in constant
// time.
func Verify(value string, stored SaltedHash) bool {
	computed := hashWithSalt(value, stored.Salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(stored.Hash)) == 1
}

func hashWithSalt(value, saltHex string) string {
	sum := sha256.Sum256([]byte(saltHex + value))
	return hex.EncodeToString(sum[:])
}
