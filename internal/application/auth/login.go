package auth

import (
	"context"

	"github.com/mangodesk/summary-service/internal/domain"
)

// Login authenticates a verified account and issues a session token.
// IMPORTANT: must not leak whether the email exists (avoid user
// enumeration) — an unknown email and a wrong password produce the
// same error.
func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	if email == "" || password == "" {
		return LoginResult{}, domain.ErrInvalidCredentials()
	}

	a, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		// Hide not-found behind invalid credentials
		return LoginResult{}, domain.ErrInvalidCredentials()
	}

	if !a.Verified {
		return LoginResult{}, domain.ErrEmailNotVerified()
	}

	if err := s.hasher.Compare(a.PasswordHash, password); err != nil {
		return LoginResult{}, domain.ErrInvalidCredentials()
	}

	tok, err := s.tokens.Issue(a.Email, PurposeSession, s.tokenTTL)
	if err != nil {
		return LoginResult{}, domain.ErrTokenSignFailed(err)
	}

	return LoginResult{
		Token:     tok,
		TokenType: "Bearer",
		ExpiresIn: int64(s.tokenTTL.Seconds()),
	}, nil
}
