package dto

// -------- Accounts --------

type RegisterResponse struct {
	Message string `json:"message"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"` // "Bearer"
	ExpiresIn int64  `json:"expires_in"` // seconds
}

// -------- Summaries --------

type SummarizeResponse struct {
	Summary string `json:"summary"`
}

type ShareResponse struct {
	Status string `json:"status"`
}
