package memory

import (
	"context"
	"sync"

	"github.com/mangodesk/summary-service/internal/domain"
)

// AccountRepo is the in-memory adapter, used by tests and keyless dev
// runs. Same contract as the file adapter, no disk.
type AccountRepo struct {
	mu       sync.RWMutex
	accounts map[string]domain.Account // keyed by email, exact match
}

func NewAccountRepo() *AccountRepo {
	return &AccountRepo{
		accounts: make(map[string]domain.Account),
	}
}

func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.accounts[email]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound()
	}
	return a, nil
}

func (r *AccountRepo) Create(ctx context.Context, a domain.Account) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[a.Email]; exists {
		return domain.Account{}, domain.ErrEmailAlreadyRegistered()
	}

	r.accounts[a.Email] = a
	return a, nil
}

func (r *AccountRepo) SetVerified(ctx context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.accounts[email]
	if !ok {
		return domain.ErrAccountNotFound()
	}
	a.Verified = true
	a.VerificationToken = ""
	r.accounts[email] = a
	return nil
}
