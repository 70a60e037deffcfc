package email

import (
	"fmt"

	"refspot_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// SMTPProvider sends mail through an SMTP relay.
type SMTPProvider struct {
	dialer   *gomail.Dialer
	from     string
	fromName string
}

func NewSMTPProvider(cfg *config.Config) *SMTPProvider {
	return &SMTPProvider{
		dialer:   gomail.NewDialer(cfg.Email.SMTPHost, cfg.Email.SMTPPort, cfg.Email.SMTPUsername, cfg.Email.SMTPPassword),
		from:     cfg.Email.FromEmail,
		fromName: cfg.Email.FromName,
	}
}

func (p *SMTPProvider) Send(email *Email) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.from, p.fromName)
	m.SetHeader("To", email.To)
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/plain", email.Body)

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
