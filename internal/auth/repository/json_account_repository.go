// Package repository implements credential storage for authentication.
//
// Provides a JSON file implementation loaded once at process startup. The
// account list is immutable for the process lifetime; credential changes
// require a restart.
package repository

import (
	"context"
	"encoding/json"
	"io/fs"
	"os"

	authDomain "github.com/slalom/capabilities/internal/auth/domain"
	apperrors "github.com/slalom/capabilities/internal/errors"
)

// practiceLeadsFile mirrors the credential seed file layout.
type practiceLeadsFile struct {
	PracticeLeads []authDomain.Account `json:"practice_leads"`
}

// JSONAccountRepository holds accounts loaded from the practice leads file.
// A missing file yields an empty roster rather than an error so the service
// can start before credentials are provisioned.
type JSONAccountRepository struct {
	accounts []authDomain.Account
}

// List returns a copy of all loaded accounts in file order.
func (j *JSONAccountRepository) List(ctx context.Context) ([]authDomain.Account, error) {
	accounts := make([]authDomain.Account, len(j.accounts))
	copy(accounts, j.accounts)
	return accounts, nil
}

// Count returns the number of loaded accounts.
func (j *JSONAccountRepository) Count() int {
	return len(j.accounts)
}

// NewJSONAccountRepository loads accounts from the JSON file at path.
// A missing file is not an error; malformed JSON is.
func NewJSONAccountRepository(path string) (*JSONAccountRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if apperrors.Is(err, fs.ErrNotExist) {
			return &JSONAccountRepository{}, nil
		}
		return nil, apperrors.Wrapf(err, "failed to read practice leads file %q", path)
	}

	var file practiceLeadsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, apperrors.Wrapf(err, "failed to parse practice leads file %q", path)
	}

	return &JSONAccountRepository{accounts: file.PracticeLeads}, nil
}
