package email

// Provider sends outgoing mail. The SMTP implementation is the only
// real one; tests substitute a fake.
type Provider interface {
	// Send delivers a single message.
	Send(email *Email) error

	// Validate checks the provider configuration.
	Validate() error

	// Close releases any held connections.
	Close() error
}
