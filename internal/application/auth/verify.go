package auth

import (
	"context"
	"strings"

	"github.com/mangodesk/summary-service/internal/domain"
)

// Verify consumes a verification token and marks the embedded account
// verified.
//
// Replay: a still-valid token presented after the account was verified
// succeeds again — the store write is a no-op. The emailed link has to
// survive a double click.
func (s *Service) Verify(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.ErrTokenMissing()
	}

	email, err := s.tokens.Verify(token, PurposeVerify)
	if err != nil {
		return err
	}

	return s.accounts.SetVerified(ctx, email)
}
