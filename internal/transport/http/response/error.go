package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mangodesk/summary-service/internal/domain"
)

// ErrorBody is every JSON error response: the message under "error",
// plus a stable machine code and optional detail.
type ErrorBody struct {
	Error     string            `json:"error"`
	Code      string            `json:"code"`
	Meta      map[string]string `json:"meta,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// WriteError converts a domain error into a consistent JSON HTTP error response.
// Non-domain errors are treated as internal errors (500) without leaking details.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, code, message, meta := explain(err)
	writeJSONError(w, r, status, code, message, meta)
}

// WriteUnauthorized writes the same body with a fixed 401. The
// bearer-token middleware uses it: a missing or bad session token on a
// guarded route is the one surface that answers 401 instead of 400.
func WriteUnauthorized(w http.ResponseWriter, r *http.Request, err error) {
	_, code, message, meta := explain(err)
	writeJSONError(w, r, http.StatusUnauthorized, code, message, meta)
}

// WriteTextError is WriteError for the plain-text verification surface.
func WriteTextError(w http.ResponseWriter, r *http.Request, err error) {
	status, _, message, _ := explain(err)
	Text(w, status, message)
}

func writeJSONError(w http.ResponseWriter, r *http.Request, status int, code, message string, meta map[string]string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(ErrorBody{
		Error:     message,
		Code:      code,
		Meta:      meta,
		RequestID: RequestIDFromContext(r),
	})
}

func explain(err error) (status int, code, message string, meta map[string]string) {
	status = http.StatusInternalServerError
	code = "internal_error"
	message = "internal error"

	var de *domain.Error
	if errors.As(err, &de) {
		status = statusFromKind(de.Kind)
		code = de.Code
		message = de.Message
		meta = de.Meta
	}
	return status, code, message, meta
}

// statusFromKind maps domain error kinds to HTTP status codes. Input,
// credential, conflict and lookup failures all answer 400; collaborator
// failures answer 500 like any other server-side fault. The stable
// code in the body is what distinguishes them.
func statusFromKind(kind domain.ErrKind) int {
	switch kind {
	case domain.KindValidation,
		domain.KindAuth,
		domain.KindForbidden,
		domain.KindNotFound,
		domain.KindConflict:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
