package email

import (
	"gopkg.in/gomail.v2"
)

// SMTPConfig carries the dialer settings.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// SMTPProvider delivers mail over SMTP via gomail.
type SMTPProvider struct {
	cfg    SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPProvider(cfg SMTPConfig) *SMTPProvider {
	return &SMTPProvider{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

func (p *SMTPProvider) Send(email *Email) error {
	m := gomail.NewMessage()

	from := email.From
	if from == "" {
		from = p.cfg.FromEmail
	}
	m.SetAddressHeader("From", from, p.cfg.FromName)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/plain", email.Body)

	return p.dialer.DialAndSend(m)
}
