package summary

import (
	"context"
	"strings"

	"github.com/mangodesk/summary-service/internal/domain"
)

// DefaultPrompt prefixes the transcript when the caller supplies none.
const DefaultPrompt = "Generate summary"

// ShareStatus is returned to every successful share.
const ShareStatus = "Summary sent."

type Service struct {
	gen  TextGenerator
	mail MailSender
}

func NewService(gen TextGenerator, mail MailSender) *Service {
	return &Service{gen: gen, mail: mail}
}

// Summarize forwards the transcript to the text-generation
// collaborator and relays its result.
func (s *Service) Summarize(ctx context.Context, transcript, prompt string) (string, error) {
	if transcript == "" {
		return "", domain.ErrMissingField("transcript")
	}

	if prompt == "" {
		prompt = DefaultPrompt
	}

	text, err := s.gen.Generate(ctx, prompt+"\n\n"+transcript)
	if err != nil {
		return "", domain.ErrGenerationFailed(err)
	}
	return text, nil
}

// Share mails the summary to a comma-separated recipient list. One
// message, all recipients; success or failure is whatever the mail
// collaborator reports.
func (s *Service) Share(ctx context.Context, emails, summaryText string) (string, error) {
	if emails == "" {
		return "", domain.ErrMissingField("emails")
	}
	if summaryText == "" {
		return "", domain.ErrMissingField("summary")
	}

	recipients := splitRecipients(emails)
	if len(recipients) == 0 {
		return "", domain.ErrInvalidField("emails", "no recipients")
	}

	if err := s.mail.SendSummary(ctx, recipients, summaryText); err != nil {
		return "", domain.ErrMailFailed(err)
	}
	return ShareStatus, nil
}

// splitRecipients splits on commas, trims whitespace, drops empties.
func splitRecipients(emails string) []string {
	parts := strings.Split(emails, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
