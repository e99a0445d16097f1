package notification

import (
	"errors"
	"strings"
	"testing"

	"fobworks/models"
	"fobworks/services/token"
)

// flakyMailer records every send and fails for the addresses in failFor.
type flakyMailer struct {
	sent    []string
	failFor map[string]bool
}

func (m *flakyMailer) Send(toEmail, toName, subject, text, html string) (string, error) {
	m.sent = append(m.sent, toEmail)
	if m.failFor[toEmail] {
		return "", errors.New("mailbox unavailable")
	}
	return "msg-id", nil
}

func newTestService(m *flakyMailer) *DefaultNotificationService {
	return &DefaultNotificationService{
		Mailer:     m,
		Actions:    token.NewActionSigner("action-secret"),
		BaseURL:    "https://fobworks.example",
		AdminEmail: "admin@fobworks.example",
	}
}

func testBooking() *models.Booking {
	return &models.Booking{
		OrderNumber: "FW-AB12C",
		Name:        "Sam",
		Email:       "sam@example.com",
		Date:        "2026-10-01",
		Slot:        "10:00",
		Status:      models.StatusPending,
	}
}

func TestBookingReceivedSendsCustomerAndAdmin(t *testing.T) {
	m := &flakyMailer{}
	svc := newTestService(m)

	if err := svc.BookingReceived(testBooking(), "manage-code"); err != nil {
		t.Fatalf("BookingReceived: %v", err)
	}
	if len(m.sent) != 2 || m.sent[0] != "sam@example.com" || m.sent[1] != "admin@fobworks.example" {
		t.Fatalf("sent = %v, want customer then admin", m.sent)
	}
}

func TestBookingReceivedStillAlertsAdminWhenCustomerSendFails(t *testing.T) {
	m := &flakyMailer{failFor: map[string]bool{"sam@example.com": true}}
	svc := newTestService(m)

	err := svc.BookingReceived(testBooking(), "manage-code")
	if err == nil {
		t.Fatal("expected an error for the failed customer send")
	}
	if len(m.sent) != 2 || m.sent[1] != "admin@fobworks.example" {
		t.Fatalf("sent = %v, admin alert was suppressed", m.sent)
	}
}

func TestActionLinksVerifyRoundTrip(t *testing.T) {
	m := &flakyMailer{}
	svc := newTestService(m)
	b := testBooking()

	link, err := svc.actionLink(b, token.ActionConfirm)
	if err != nil {
		t.Fatalf("actionLink: %v", err)
	}
	if !strings.Contains(link, "/admin/action?order=FW-AB12C&action=confirm&token=") {
		t.Fatalf("unexpected link shape: %s", link)
	}
	tok := link[strings.LastIndex(link, "token=")+len("token="):]
	claims, err := svc.Actions.Verify(tok)
	if err != nil {
		t.Fatalf("minted token does not verify: %v", err)
	}
	if claims.OrderNumber != b.OrderNumber || claims.Action != token.ActionConfirm {
		t.Fatalf("claims = %+v", claims)
	}
}
