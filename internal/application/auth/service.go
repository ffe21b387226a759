package auth

import (
	"time"
)

// RegisterMessage is returned to every successful registration.
const RegisterMessage = "Registration successful. Please check your email to verify."

type Service struct {
	accounts AccountRepo
	hasher   PasswordHasher
	tokens   TokenIssuer
	mail     MailSender

	tokenTTL time.Duration

	// publicBaseURL is the externally reachable origin used to build
	// verification links, e.g. https://summaries.example.com
	publicBaseURL string
}

type Config struct {
	TokenTTL      time.Duration
	PublicBaseURL string
}

func NewService(
	accounts AccountRepo,
	hasher PasswordHasher,
	tokens TokenIssuer,
	mail MailSender,
	cfg Config,
) *Service {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Service{
		accounts:      accounts,
		hasher:        hasher,
		tokens:        tokens,
		mail:          mail,
		tokenTTL:      ttl,
		publicBaseURL: cfg.PublicBaseURL,
	}
}

// LoginResult is the session issued to a verified account.
type LoginResult struct {
	Token     string
	TokenType string // "Bearer"
	ExpiresIn int64  // seconds
}
