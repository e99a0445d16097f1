package mailer

import "go.uber.org/zap"

// DevMailer logs messages instead of sending them. Used when no SMTP or
// MailerSend credentials are configured.
type DevMailer struct {
	Logger *zap.Logger
}

func (d *DevMailer) Send(toEmail, toName, subject, text, html string) (string, error) {
	d.Logger.Info("dev mailer: outbound email",
		zap.String("to", toEmail),
		zap.String("subject", subject),
		zap.String("text", text),
	)
	return "dev", nil
}
