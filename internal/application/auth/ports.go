package auth

import (
	"context"
	"time"

	"github.com/mangodesk/summary-service/internal/domain"
)

/*
AccountRepo
-----------
Persistence port for accounts.
Only describes WHAT the auth flows need, not HOW it's stored.
The backing store replaces its whole collection on every mutation;
that contract lives in the adapter, not here.
*/
type AccountRepo interface {
	GetByEmail(ctx context.Context, email string) (domain.Account, error)
	Create(ctx context.Context, a domain.Account) (domain.Account, error)

	// SetVerified marks the account verified and clears its stored
	// verification token. Calling it on an already-verified account is
	// a harmless no-op.
	SetVerified(ctx context.Context, email string) error
}

/*
PasswordHasher
--------------
Abstracts bcrypt / argon2.
*/
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error // nil if match
}

/*
TokenIssuer
-----------
Issues and verifies signed tokens (JWT). Session tokens and
verification tokens share the signing mechanism but carry a distinct
purpose claim so one can never stand in for the other.
*/
type TokenPurpose string

const (
	PurposeSession TokenPurpose = "session"
	PurposeVerify  TokenPurpose = "verify"
)

type TokenIssuer interface {
	Issue(email string, purpose TokenPurpose, ttl time.Duration) (string, error)
	Verify(token string, purpose TokenPurpose) (email string, err error)
}

/*
MailSender
----------
The mail collaborator, as far as registration cares: one verification
message per new account.
*/
type MailSender interface {
	SendVerification(ctx context.Context, to, link string) error
}
