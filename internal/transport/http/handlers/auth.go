package http_handlers

import (
	"errors"
	"net/http"

	"github.com/mangodesk/summary-service/internal/application/auth"
	"github.com/mangodesk/summary-service/internal/domain"
	"github.com/mangodesk/summary-service/internal/logger"
	"github.com/mangodesk/summary-service/internal/transport/http/dto"
	"github.com/mangodesk/summary-service/internal/transport/http/middleware"
	"github.com/mangodesk/summary-service/internal/transport/http/response"
)

// VerifiedMessage is the plain-text body of a successful verification
// visit.
const VerifiedMessage = "Email verified! You can now log in."

type AuthHandler struct {
	svc *auth.Service
}

func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	msg, err := h.svc.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("email", req.Email).
		Msg("account_registered")

	response.Created(w, dto.RegisterResponse{Message: msg})
}

// Verify answers the emailed link. Plain text on both paths — a human
// lands here with a browser, not a JSON client.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")

	if err := h.svc.Verify(r.Context(), token); err != nil {
		response.WriteTextError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().Msg("account_verified")
	response.Text(w, http.StatusOK, VerifiedMessage)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		middleware.LoginAttemptsTotal.WithLabelValues(loginFailureLabel(err)).Inc()
		response.WriteError(w, r, err)
		return
	}

	middleware.LoginAttemptsTotal.WithLabelValues("success").Inc()
	logger.WithCtx(r.Context()).Info().
		Str("email", req.Email).
		Msg("login_succeeded")

	response.OK(w, dto.LoginResponse{
		Token:     res.Token,
		TokenType: res.TokenType,
		ExpiresIn: res.ExpiresIn,
	})
}

func loginFailureLabel(err error) string {
	var de *domain.Error
	if errors.As(err, &de) {
		return de.Code
	}
	return "error"
}
