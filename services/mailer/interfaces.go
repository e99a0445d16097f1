package mailer

// Service sends a single email. Implementations must bound the send with
// their own timeouts; a failed send is reported to the caller and never
// retried here.
type Service interface {
	Send(toEmail, toName, subject, text, html string) (string, error)
}
