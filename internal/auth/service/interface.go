// Package service provides technical services for authentication operations.
//
// This package implements password digest computation and verification for
// the credential seed file, supporting both the legacy SHA-256 digest format
// and Argon2id hashes produced by the hash-password command.
package service

// PasswordService defines operations for password digest computation and verification.
type PasswordService interface {
	// HashPassword computes the hex-encoded SHA-256 digest of a plain text
	// password. This is the digest format used by the credential seed file.
	HashPassword(plainPassword string) string

	// HashPasswordArgon2 hashes a plain text password using Argon2id.
	// Used by the hash-password command to produce stronger seed entries.
	HashPasswordArgon2(plainPassword string) (hashedPassword string, error error)

	// VerifyPassword compares a plain text password against a stored hash.
	// Argon2id hashes (prefixed with "$argon2") are verified with the hasher;
	// anything else is treated as a hex-encoded SHA-256 digest and compared
	// in constant time. Returns true on match, false otherwise.
	VerifyPassword(plainPassword string, storedHash string) bool
}
