package http_handlers

import (
	"net/http"

	"github.com/mangodesk/summary-service/internal/application/summary"
	"github.com/mangodesk/summary-service/internal/logger"
	"github.com/mangodesk/summary-service/internal/transport/http/dto"
	"github.com/mangodesk/summary-service/internal/transport/http/middleware"
	"github.com/mangodesk/summary-service/internal/transport/http/response"
)

type SummaryHandler struct {
	svc *summary.Service
}

func NewSummaryHandler(svc *summary.Service) *SummaryHandler {
	return &SummaryHandler{svc: svc}
}

func (h *SummaryHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	var req dto.SummarizeRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	text, err := h.svc.Summarize(r.Context(), req.Transcript, req.Prompt)
	if err != nil {
		middleware.SummariesGeneratedTotal.WithLabelValues("failed").Inc()
		response.WriteError(w, r, err)
		return
	}

	middleware.SummariesGeneratedTotal.WithLabelValues("success").Inc()
	logger.WithCtx(r.Context()).Info().
		Int("transcript_len", len(req.Transcript)).
		Msg("summary_generated")

	response.OK(w, dto.SummarizeResponse{Summary: text})
}

func (h *SummaryHandler) Share(w http.ResponseWriter, r *http.Request) {
	var req dto.ShareRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	status, err := h.svc.Share(r.Context(), req.Emails, req.Summary)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	email, _ := middleware.EmailFromContext(r.Context())
	logger.WithCtx(r.Context()).Info().
		Str("shared_by", email).
		Msg("summary_shared")

	response.OK(w, dto.ShareResponse{Status: status})
}
