package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/mangodesk/summary-service/internal/domain"
)

// AccountRepo persists accounts as one JSON array in a single file.
// Every mutation is a full read-modify-write: load the whole
// collection, change it, rewrite the whole file. A process-local mutex
// serializes that cycle; a second process writing the same file can
// still lose updates. Single-instance deployment is assumed.
type AccountRepo struct {
	mu   sync.Mutex
	path string
}

func NewAccountRepo(path string) *AccountRepo {
	return &AccountRepo{path: path}
}

func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	accounts, err := r.load()
	if err != nil {
		return domain.Account{}, err
	}

	for _, a := range accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return domain.Account{}, domain.ErrAccountNotFound()
}

func (r *AccountRepo) Create(ctx context.Context, a domain.Account) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	accounts, err := r.load()
	if err != nil {
		return domain.Account{}, err
	}

	for _, existing := range accounts {
		if existing.Email == a.Email {
			return domain.Account{}, domain.ErrEmailAlreadyRegistered()
		}
	}

	accounts = append(accounts, a)
	if err := r.save(accounts); err != nil {
		return domain.Account{}, err
	}
	return a, nil
}

func (r *AccountRepo) SetVerified(ctx context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	accounts, err := r.load()
	if err != nil {
		return err
	}

	for i := range accounts {
		if accounts[i].Email == email {
			accounts[i].Verified = true
			accounts[i].VerificationToken = ""
			return r.save(accounts)
		}
	}
	return domain.ErrAccountNotFound()
}

// load reads the whole collection. A missing file is an empty store.
func (r *AccountRepo) load() ([]domain.Account, error) {
	b, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, domain.ErrStoreFailed(fmt.Errorf("read %s: %w", r.path, err))
	}

	var accounts []domain.Account
	if err := json.Unmarshal(b, &accounts); err != nil {
		return nil, domain.ErrStoreFailed(fmt.Errorf("decode %s: %w", r.path, err))
	}
	return accounts, nil
}

// save replaces the whole collection on disk.
func (r *AccountRepo) save(accounts []domain.Account) error {
	b, err := json.MarshalIndent(accounts, "", "  ")
	if err != nil {
		return domain.ErrStoreFailed(err)
	}
	if err := os.WriteFile(r.path, b, 0o600); err != nil {
		return domain.ErrStoreFailed(fmt.Errorf("write %s: %w", r.path, err))
	}
	return nil
}
