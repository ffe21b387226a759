package dto

// -------- Accounts --------

// Presence is the only requirement on the identifier; whatever shape
// registers is the shape that logs in, with no normalization between.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *RegisterRequest) Validate() error { return validateStruct(r) }

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error { return validateStruct(r) }

// -------- Summaries --------

type SummarizeRequest struct {
	Transcript string `json:"transcript" validate:"required"`
	Prompt     string `json:"prompt"`
}

func (r *SummarizeRequest) Validate() error { return validateStruct(r) }

// Emails is a comma-separated recipient list, split server-side.
type ShareRequest struct {
	Emails  string `json:"emails" validate:"required"`
	Summary string `json:"summary" validate:"required"`
}

func (r *ShareRequest) Validate() error { return validateStruct(r) }
