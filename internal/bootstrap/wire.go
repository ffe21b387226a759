package bootstrap

import (
	"net/http"

	"github.com/mangodesk/summary-service/internal/application/auth"
	"github.com/mangodesk/summary-service/internal/application/summary"
	"github.com/mangodesk/summary-service/internal/config"
	"github.com/mangodesk/summary-service/internal/infrastructure/filestore"
	"github.com/mangodesk/summary-service/internal/infrastructure/groq"
	"github.com/mangodesk/summary-service/internal/infrastructure/mail"
	"github.com/mangodesk/summary-service/internal/infrastructure/security"
	"github.com/mangodesk/summary-service/internal/logger"
	http_handlers "github.com/mangodesk/summary-service/internal/transport/http/handlers"
	"github.com/mangodesk/summary-service/internal/transport/http/middleware"
	"github.com/mangodesk/summary-service/internal/transport/http/response"
	"github.com/mangodesk/summary-service/internal/transport/http/router"
)

/*
========================
 Public entry (prod)
========================
*/

func NewServer() (*http.Server, func(), error) {
	return newServer(defaultDeps())
}

// NewServerWithDeps allows injecting dependencies for testing.
func NewServerWithDeps(deps Deps) (*http.Server, func(), error) {
	return newServer(deps)
}

/*
========================
 Dependency injection
========================
*/

// MailSender is everything the two mail flows need from one adapter.
type MailSender interface {
	auth.MailSender
	summary.MailSender
}

type Deps struct {
	LoadConfig func() (*config.Config, error)

	NewAccounts  func(cfg *config.Config) auth.AccountRepo
	NewMail      func(cfg *config.Config) MailSender
	NewGenerator func(cfg *config.Config) summary.TextGenerator

	NewRouter func(router.Deps) (http.Handler, error)
}

func defaultDeps() Deps {
	return Deps{
		LoadConfig: config.Load,

		NewAccounts: func(cfg *config.Config) auth.AccountRepo {
			return filestore.NewAccountRepo(cfg.UsersFile)
		},

		NewMail: func(cfg *config.Config) MailSender {
			return mail.NewSMTPSender(mail.SMTPConfig{
				Host:     cfg.SMTPHost,
				Port:     cfg.SMTPPort,
				Username: cfg.SMTPUsername,
				Password: cfg.SMTPPassword,
				From:     cfg.SMTPFrom,
				Timeout:  cfg.SMTPTimeout,
				Insecure: cfg.SMTPInsecure,
			}, logger.Logger)
		},

		NewGenerator: func(cfg *config.Config) summary.TextGenerator {
			return groq.NewClient(groq.Config{
				BaseURL: cfg.GroqBaseURL,
				APIKey:  cfg.GroqAPIKey,
				Model:   cfg.GroqModel,
			})
		},

		NewRouter: router.New,
	}
}

/*
========================
 Core bootstrap logic
========================
*/

func newServer(deps Deps) (*http.Server, func(), error) {
	cfg, err := deps.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	accounts := deps.NewAccounts(cfg)
	mailer := deps.NewMail(cfg)
	generator := deps.NewGenerator(cfg)

	hasher := security.NewBcryptHasher(0)
	tokens := security.NewJWTTokens(cfg.JWTSecret, "summary-service")

	authSvc := auth.NewService(accounts, hasher, tokens, mailer, auth.Config{
		TokenTTL:      cfg.TokenTTL,
		PublicBaseURL: cfg.PublicBaseURL,
	})
	summarySvc := summary.NewService(generator, mailer)

	h, err := deps.NewRouter(router.Deps{
		Health:  http_handlers.NewHealthHandler(),
		Auth:    http_handlers.NewAuthHandler(authSvc),
		Summary: http_handlers.NewSummaryHandler(summarySvc),

		AuthMW: middleware.Auth(tokens, response.WriteUnauthorized),

		CORSAllowedOrigins:  cfg.CORSAllowedOrigins,
		MaxBodyBytes:        cfg.MaxBodyBytes,
		CredentialRateLimit: 30,
	})
	if err != nil {
		return nil, nil, err
	}

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      h,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	cleanup := func() {}
	return srv, cleanup, nil
}
