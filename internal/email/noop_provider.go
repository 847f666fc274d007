package email

// NoopProvider is used when SMTP is not configured.
type NoopProvider struct{}

func NewNoopProvider() *NoopProvider {
	return &NoopProvider{}
}

func (*NoopProvider) Send(email *Email) error {
	return nil
}
