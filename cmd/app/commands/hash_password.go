package commands

import (
	"fmt"

	authService "github.com/slalom/capabilities/internal/auth/service"
	"github.com/slalom/capabilities/internal/validation"
)

// RunHashPassword hashes a plain text password for the practice leads file.
// By default it produces the hex-encoded SHA-256 digest the seed file uses.
// With useArgon2 set it produces an Argon2id hash instead, which the
// authenticator accepts as well.
//
// Output format:
//   - the hash on its own line
//   - a ready-to-paste account entry for the practice leads file
func RunHashPassword(io IOTuple, plainPassword string, useArgon2 bool) error {
	// Reject weak passwords before hashing
	rule := validation.PasswordStrength{
		MinLength:     12,
		RequireUpper:  true,
		RequireLower:  true,
		RequireNumber: true,
	}
	if err := rule.Validate(plainPassword); err != nil {
		return fmt.Errorf("password is too weak: %w", err)
	}

	passwordService := authService.NewPasswordService()

	var hash string
	if useArgon2 {
		argonHash, err := passwordService.HashPasswordArgon2(plainPassword)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		hash = argonHash
	} else {
		hash = passwordService.HashPassword(plainPassword)
	}

	_, _ = fmt.Fprintln(io.Writer, hash)
	_, _ = fmt.Fprintln(io.Writer)
	_, _ = fmt.Fprintln(io.Writer, "# Add an entry like this to the practice leads file:")
	_, _ = fmt.Fprintf(
		io.Writer,
		"{\"username\": \"lead@slalom.com\", \"password_hash\": \"%s\", \"role\": \"practice_lead\"}\n",
		hash,
	)

	return nil
}
