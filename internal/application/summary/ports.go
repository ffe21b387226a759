package summary

import "context"

/*
TextGenerator
-------------
The text-generation collaborator. Takes a fully composed prompt and
returns the generated text. No retries here; the provider's own
timeout bounds the call.
*/
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

/*
MailSender
----------
The mail collaborator, as far as sharing cares: one message to all
recipients, all-or-nothing.
*/
type MailSender interface {
	SendSummary(ctx context.Context, recipients []string, summaryText string) error
}
