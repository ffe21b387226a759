package auth

import (
	"context"
	"net/url"
	"strings"

	"github.com/mangodesk/summary-service/internal/domain"
	"github.com/mangodesk/summary-service/internal/logger"
)

// Register creates an unverified account and dispatches the
// verification mail. The caller gets success even when the mail
// dispatch fails; a registered account must not depend on the mail
// collaborator being up at that instant.
func (s *Service) Register(ctx context.Context, email, password string) (string, error) {
	if email == "" {
		return "", domain.ErrMissingField("email")
	}
	if password == "" {
		return "", domain.ErrMissingField("password")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", domain.ErrHashFailed(err)
	}

	verifyToken, err := s.tokens.Issue(email, PurposeVerify, s.tokenTTL)
	if err != nil {
		return "", domain.ErrTokenSignFailed(err)
	}

	a := domain.Account{
		Email:             email,
		PasswordHash:      hash,
		Verified:          false,
		VerificationToken: verifyToken,
	}

	if _, err := s.accounts.Create(ctx, a); err != nil {
		return "", err
	}

	link := s.verificationLink(verifyToken)
	if err := s.mail.SendVerification(ctx, email, link); err != nil {
		logger.WithCtx(ctx).Warn().Err(err).
			Str("email", email).
			Msg("verification mail dispatch failed")
	}

	return RegisterMessage, nil
}

func (s *Service) verificationLink(token string) string {
	return strings.TrimRight(s.publicBaseURL, "/") + "/verify?token=" + url.QueryEscape(token)
}
