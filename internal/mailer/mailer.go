// Package mailer holds the outbound email transports. Callers treat
// delivery as best-effort: a transport error never fails the operation
// that triggered the email.
package mailer

import "pspk/internal/config"

type Transport interface {
	Send(to, subject, htmlBody string) error
}

// New picks the transport from config: the Resend HTTP API in
// production, SMTP (e.g. a local mailcatcher) elsewhere.
func New(cfg config.EmailConfig) Transport {
	if cfg.Provider == "resend" {
		return NewResendTransport(cfg.APIKey, cfg.FromAddress)
	}
	return NewSMTPTransport(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.FromAddress)
}
