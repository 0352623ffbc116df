package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"github.com/allisson/go-pwdhash"

	apperrors "github.com/slalom/capabilities/internal/errors"
)

// argon2Prefix marks hashes produced by the Argon2id hasher.
const argon2Prefix = "$argon2"

// passwordService implements PasswordService with SHA-256 digests and an
// Argon2id hasher for upgraded seed entries.
type passwordService struct {
	hasher *pwdhash.PasswordHasher
}

// HashPassword computes the hex-encoded SHA-256 digest of a plain text password.
func (p *passwordService) HashPassword(plainPassword string) string {
	digest := sha256.Sum256([]byte(plainPassword))
	return hex.EncodeToString(digest[:])
}

// HashPasswordArgon2 hashes a plain text password using Argon2id.
func (p *passwordService) HashPasswordArgon2(plainPassword string) (string, error) {
	hashedPassword, err := p.hasher.Hash([]byte(plainPassword))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return hashedPassword, nil
}

// VerifyPassword compares a plain text password against a stored hash.
// Argon2id hashes are verified with the hasher; SHA-256 digests are compared
// in constant time.
func (p *passwordService) VerifyPassword(plainPassword string, storedHash string) bool {
	if strings.HasPrefix(storedHash, argon2Prefix) {
		ok, err := p.hasher.Verify([]byte(plainPassword), storedHash)
		if err != nil {
			return false
		}
		return ok
	}

	digest := p.HashPassword(plainPassword)
	return subtle.ConstantTimeCompare([]byte(digest), []byte(storedHash)) == 1
}

// NewPasswordService creates a new PasswordService instance.
// Uses the Moderate Argon2id policy for a balance between security and performance.
func NewPasswordService() PasswordService {
	hasher, err := pwdhash.New(
		pwdhash.WithPolicy(pwdhash.PolicyModerate),
	)
	if err != nil {
		// This should never happen with valid policy
		panic(err)
	}

	return &passwordService{
		hasher: hasher,
	}
}
