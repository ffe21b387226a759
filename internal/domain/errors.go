package domain

import (
	"errors"
	"fmt"
)

// ErrKind is used to map domain errors to HTTP status codes consistently.
type ErrKind string

const (
	KindValidation   ErrKind = "validation"   // 400
	KindAuth         ErrKind = "auth"         // 400; 401 when raised by the bearer middleware
	KindForbidden    ErrKind = "forbidden"    // 400
	KindNotFound     ErrKind = "not_found"    // 400
	KindConflict     ErrKind = "conflict"     // 400
	KindCollaborator ErrKind = "collaborator" // 500
	KindInternal     ErrKind = "internal"     // 500
)

// Error is a structured domain error.
// - Kind: high-level category for HTTP mapping
// - Code: stable machine code (do not change casually)
// - Message: safe summary for clients (avoid leaking sensitive details)
// - Meta: optional details (field, reason, etc.)
// - Cause: wrapped internal error for logging/diagnostics
type Error struct {
	Kind    ErrKind
	Code    string
	Message string
	Meta    map[string]string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Kind, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Kind, e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

func New(kind ErrKind, code, msg string) *Error {
	return &Error{Kind: kind, Code: code, Message: msg}
}

func Wrap(kind ErrKind, code, msg string, cause error) *Error {
	return &Error{Kind: kind, Code: code, Message: msg, Cause: cause}
}

func WithMeta(err *Error, meta map[string]string) *Error {
	err.Meta = meta
	return err
}

func Is(err error, code string) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// ----------------------
// Validation errors
// ----------------------

func ErrInvalidJSON(cause error) *Error {
	return Wrap(KindValidation, "invalid_json", "invalid JSON body", cause)
}

func ErrMissingField(field string) *Error {
	return WithMeta(New(KindValidation, "missing_field", "missing required field"), map[string]string{
		"field": field,
	})
}

func ErrInvalidField(field, reason string) *Error {
	return WithMeta(New(KindValidation, "invalid_field", "invalid field"), map[string]string{
		"field":  field,
		"reason": reason,
	})
}

// ----------------------
// Auth errors
// ----------------------

// IMPORTANT: use this for login failures to avoid user enumeration.
// A wrong password and an unknown email must be indistinguishable.
func ErrInvalidCredentials() *Error {
	return New(KindAuth, "invalid_credentials", "invalid email or password")
}

func ErrTokenMissing() *Error {
	return New(KindAuth, "token_missing", "no token provided")
}

func ErrTokenInvalid() *Error {
	return New(KindAuth, "token_invalid", "invalid or expired token")
}

func ErrTokenExpired() *Error {
	return New(KindAuth, "token_expired", "invalid or expired token")
}

// ----------------------
// Forbidden
// ----------------------

func ErrEmailNotVerified() *Error {
	return New(KindForbidden, "email_not_verified", "email not verified")
}

// ----------------------
// Not Found
// ----------------------

func ErrAccountNotFound() *Error {
	return New(KindNotFound, "account_not_found", "account not found")
}

// ----------------------
// Conflict
// ----------------------

func ErrEmailAlreadyRegistered() *Error {
	return New(KindConflict, "email_already_registered", "email already registered")
}

// ----------------------
// Collaborator failures
// ----------------------

func ErrGenerationFailed(cause error) *Error {
	return Wrap(KindCollaborator, "generation_failed", "failed to generate summary", cause)
}

func ErrMailFailed(cause error) *Error {
	return Wrap(KindCollaborator, "mail_failed", "failed to send email", cause)
}

// ----------------------
// Internal
// ----------------------

func ErrStoreFailed(cause error) *Error {
	return Wrap(KindInternal, "store_failed", "account store unavailable", cause)
}

func ErrHashFailed(cause error) *Error {
	return Wrap(KindInternal, "hash_failed", "password hashing failed", cause)
}

func ErrTokenSignFailed(cause error) *Error {
	return Wrap(KindInternal, "token_sign_failed", "token signing failed", cause)
}

func ErrInternal(cause error) *Error {
	return Wrap(KindInternal, "internal_error", "internal error", cause)
}
