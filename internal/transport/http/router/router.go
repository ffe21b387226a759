package router

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mangodesk/summary-service/internal/transport/http/middleware"
)

type HealthHandler interface {
	Healthz(w http.ResponseWriter, r *http.Request)
}

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Verify(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type SummaryHandler interface {
	Summarize(w http.ResponseWriter, r *http.Request)
	Share(w http.ResponseWriter, r *http.Request)
}

type Deps struct {
	Health  HealthHandler
	Auth    AuthHandler
	Summary SummaryHandler

	AuthMW func(http.Handler) http.Handler

	CORSAllowedOrigins []string
	MaxBodyBytes       int64

	// Credential endpoints get a per-IP budget; 0 disables limiting
	// (unit tests hammer these paths).
	CredentialRateLimit int
}

func New(deps Deps) (http.Handler, error) {
	if deps.Health == nil {
		return nil, fmt.Errorf("nil Health handler")
	}
	if deps.Auth == nil {
		return nil, fmt.Errorf("nil Auth handler")
	}
	if deps.Summary == nil {
		return nil, fmt.Errorf("nil Summary handler")
	}
	if deps.AuthMW == nil {
		return nil, fmt.Errorf("nil Auth middleware")
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(deps.CORSAllowedOrigins))
	r.Use(middleware.Metrics)
	r.Use(middleware.BodyLimit(deps.MaxBodyBytes))

	r.Get("/healthz", deps.Health.Healthz)
	r.Handle("/metrics", promhttp.Handler())

	// Credential lifecycle
	r.Group(func(r chi.Router) {
		if deps.CredentialRateLimit > 0 {
			r.Use(httprate.LimitByIP(deps.CredentialRateLimit, time.Minute))
		}
		r.Post("/register", deps.Auth.Register)
		r.Post("/login", deps.Auth.Login)
	})
	r.Get("/verify", deps.Auth.Verify) // ?token=...

	// Summaries
	r.Post("/summarize", deps.Summary.Summarize)
	r.With(deps.AuthMW).Post("/share", deps.Summary.Share)

	return r, nil
}
