// Package domain defines authentication and authorization domain models.
//
// Accounts authenticate with per-request credentials and carry a role that
// controls which roster mutations they may perform.
package domain

// Role defines the access level of an account.
type Role string

const (
	// RolePracticeLead can manage the consultant roster of any capability.
	RolePracticeLead Role = "practice_lead"

	// RoleConsultant can only manage their own roster membership.
	RoleConsultant Role = "consultant"
)

// Account represents a credentialed user loaded from the practice leads file.
// The JSON tags match the credential seed file format.
type Account struct {
	Username     string `json:"username"`      // Login identifier, an email address by convention
	PasswordHash string `json:"password_hash"` //nolint:gosec // hex-encoded SHA-256 digest (not plaintext)
	Role         Role   `json:"role"`
}

// CanManage checks if the account may register or unregister the given
// consultant email. Practice leads manage any consultant; consultants may
// only manage themselves. The consultant branch is the documented intended
// policy even though the seed file currently only carries practice leads.
func (a *Account) CanManage(email string) bool {
	switch a.Role {
	case RolePracticeLead:
		return true
	case RoleConsultant:
		return a.Username == email
	default:
		return false
	}
}
