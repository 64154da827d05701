package email

// Email is one outbound message.
type Email struct {
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// Provider sends transactional mail. A nil Provider is valid everywhere
// it is consumed: mail is best-effort and never blocks a request.
type Provider interface {
	Send(email *Email) error

	// SendWelcome sends the post-registration welcome message.
	SendWelcome(to, firstName string) error

	// Close releases provider resources.
	Close() error
}
