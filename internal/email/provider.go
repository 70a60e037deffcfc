package email

// Email is an outbound message.
type Email struct {
	To      string
	Subject string
	Body    string
}

// Provider sends notification emails. All sends in this application are
// best-effort: callers log failures and move on.
type Provider interface {
	Send(email *Email) error
}

// NoopProvider is used when email is disabled in config.
type NoopProvider struct{}

func (p *NoopProvider) Send(email *Email) error { return nil }
