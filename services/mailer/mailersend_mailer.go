package mailer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mailersend/mailersend-go"
)

type MailerSendMailer struct {
	client *mailersend.Mailersend
	from   mailersend.From
}

func NewMailerSendMailer(apiKey, fromName, fromEmail string) (*MailerSendMailer, error) {
	if apiKey == "" || fromEmail == "" {
		return nil, errors.New("mailersend requires an API key and a from address")
	}
	return &MailerSendMailer{
		client: mailersend.NewMailersend(apiKey),
		from:   mailersend.From{Name: fromName, Email: fromEmail},
	}, nil
}

func (m *MailerSendMailer) Send(toEmail, toName, subject, text, html string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	msg := m.client.Email.NewMessage()
	msg.SetFrom(m.from)
	msg.SetRecipients([]mailersend.Recipient{{Name: toName, Email: toEmail}})
	msg.SetSubject(subject)
	if strings.TrimSpace(text) != "" {
		msg.SetText(text)
	}
	if strings.TrimSpace(html) != "" {
		msg.SetHTML(html)
	}

	res, err := m.client.Email.Send(ctx, msg)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(res.Body)
		return "", fmt.Errorf("mailersend error: status=%d body=%s", res.StatusCode, strings.TrimSpace(string(body)))
	}
	return res.Header.Get("X-Message-Id"), nil
}
