package email

// Email is a plain mail message.
type Email struct {
	From    string
	To      []string
	Subject string
	Body    string
}

// Provider sends email. Used by the notification fan-out as a best-effort
// mirror; failures never propagate to the triggering operation.
type Provider interface {
	Send(email *Email) error
}
