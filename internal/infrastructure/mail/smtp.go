package mail

import (
	"context"
	"fmt"
	"html"
	"time"

	"github.com/rs/zerolog"
	gomail "github.com/wneessen/go-mail"
)

// SMTPSender is the mail collaborator adapter. One message per call,
// no retries; the per-send timeout is the only bound.
type SMTPSender struct {
	lg zerolog.Logger

	host     string
	port     int
	user     string
	pass     string
	from     string
	insecure bool

	timeout time.Duration
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
	Insecure bool
}

func NewSMTPSender(cfg SMTPConfig, lg zerolog.Logger) *SMTPSender {
	return &SMTPSender{
		lg:       lg.With().Str("component", "smtp_sender").Logger(),
		host:     cfg.Host,
		port:     cfg.Port,
		user:     cfg.Username,
		pass:     cfg.Password,
		from:     cfg.From,
		insecure: cfg.Insecure,
		timeout:  cfg.Timeout,
	}
}

func (s *SMTPSender) SendVerification(ctx context.Context, to, link string) error {
	subject := "Verify your email"
	text := fmt.Sprintf("Verify your email by opening this link:\n\n%s\n", link)
	return s.send(ctx, []string{to}, subject, text, renderVerificationHTML(link))
}

func (s *SMTPSender) SendSummary(ctx context.Context, recipients []string, summaryText string) error {
	return s.send(ctx, recipients, "Shared Summary", summaryText, "")
}

func (s *SMTPSender) send(ctx context.Context, to []string, subject, textBody, htmlBody string) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	m := gomail.NewMsg()
	if err := m.From(s.from); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := m.To(to...); err != nil {
		return fmt.Errorf("invalid to address: %w", err)
	}
	m.Subject(subject)

	m.SetBodyString(gomail.TypeTextPlain, textBody)
	if htmlBody != "" {
		m.AddAlternativeString(gomail.TypeTextHTML, htmlBody)
	}

	tlsPolicy := gomail.TLSMandatory
	if s.insecure {
		tlsPolicy = gomail.TLSOpportunistic
	}

	opts := []gomail.Option{
		gomail.WithPort(s.port),
		gomail.WithTLSPolicy(tlsPolicy),
	}
	if s.user != "" {
		opts = append(opts, gomail.WithSMTPAuth(gomail.SMTPAuthPlain), gomail.WithUsername(s.user), gomail.WithPassword(s.pass))
	}

	c, err := gomail.NewClient(s.host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client init failed: %w", err)
	}

	if err := c.DialAndSendWithContext(ctx, m); err != nil {
		s.lg.Error().Err(err).Strs("to", to).Str("subject", subject).Msg("smtp send failed")
		return fmt.Errorf("smtp send: %w", err)
	}

	s.lg.Info().Strs("to", to).Str("subject", subject).Msg("smtp send ok")
	return nil
}

func renderVerificationHTML(link string) string {
	escLink := html.EscapeString(link)

	// very simple inline HTML (works in Gmail)
	return `<!doctype html>
<html>
  <body style="font-family:Arial,Helvetica,sans-serif; line-height:1.4;">
    <h2>Verify your email</h2>
    <p>Click the button below to verify your email address.</p>

    <p>
      <a href="` + escLink + `" style="display:inline-block; padding:10px 14px; text-decoration:none; border-radius:6px; background:#111; color:#fff;">
        Verify email
      </a>
    </p>

    <p style="color:#555; font-size:12px;">
      If the button doesn't work, open this link:<br/>
      <a href="` + escLink + `">` + escLink + `</a>
    </p>
  </body>
</html>`
}
