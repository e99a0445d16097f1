package mailer

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"
)

// SMTP timeouts. The socket deadline bounds the whole exchange; past it the
// send counts as failed.
const (
	smtpDialTimeout   = 10 * time.Second
	smtpSocketTimeout = 30 * time.Second
)

type SMTPMailer struct {
	Host string
	Port int
	From string
	User string
	Pass string
}

func NewSMTPMailer(host string, port int, from, user, pass string) *SMTPMailer {
	return &SMTPMailer{
		Host: strings.TrimSpace(host),
		Port: port,
		From: strings.TrimSpace(from),
		User: strings.TrimSpace(user),
		Pass: strings.TrimSpace(pass),
	}
}

func (s *SMTPMailer) Send(toEmail, toName, subject, text, html string) (string, error) {
	toEmail = strings.TrimSpace(toEmail)
	if toEmail == "" {
		return "", fmt.Errorf("empty recipient email")
	}

	var buf bytes.Buffer
	boundary := "alt-boundary"
	fmt.Fprintf(&buf, "From: %s\r\n", s.From)
	fmt.Fprintf(&buf, "To: %s\r\n", toEmail)
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%s\r\n\r\n", boundary)

	fmt.Fprintf(&buf, "--%s\r\n", boundary)
	fmt.Fprintf(&buf, "Content-Type: text/plain; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&buf, "%s\r\n\r\n", text)

	fmt.Fprintf(&buf, "--%s\r\n", boundary)
	fmt.Fprintf(&buf, "Content-Type: text/html; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&buf, "%s\r\n\r\n", html)

	fmt.Fprintf(&buf, "--%s--\r\n", boundary)

	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)

	conn, err := net.DialTimeout("tcp", addr, smtpDialTimeout)
	if err != nil {
		return "", fmt.Errorf("smtp dial: %w", err)
	}
	defer conn.Close()
	if err := conn.SetDeadline(time.Now().Add(smtpSocketTimeout)); err != nil {
		return "", fmt.Errorf("smtp deadline: %w", err)
	}

	c, err := smtp.NewClient(conn, s.Host)
	if err != nil {
		return "", fmt.Errorf("smtp greeting: %w", err)
	}
	defer c.Quit()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: s.Host}); err != nil {
			return "", fmt.Errorf("smtp starttls: %w", err)
		}
	}
	if s.User != "" {
		auth := smtp.PlainAuth("", s.User, s.Pass, s.Host)
		if err := c.Auth(auth); err != nil {
			return "", fmt.Errorf("smtp auth: %w", err)
		}
	}
	if err := c.Mail(s.From); err != nil {
		return "", fmt.Errorf("smtp mail from: %w", err)
	}
	if err := c.Rcpt(toEmail); err != nil {
		return "", fmt.Errorf("smtp rcpt to: %w", err)
	}
	w, err := c.Data()
	if err != nil {
		return "", fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return "", fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("smtp close: %w", err)
	}
	return "", nil
}
