package notification

import (
	"errors"
	"fmt"
	"net/url"

	"fobworks/models"
	"fobworks/services/mailer"
	"fobworks/services/token"
)

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Mailer     mailer.Service
	Actions    *token.ActionSigner
	BaseURL    string
	AdminEmail string
}

func (n *DefaultNotificationService) manageLink(b *models.Booking, code string) string {
	return fmt.Sprintf("%s/booking/manage?order=%s&code=%s",
		n.BaseURL, url.QueryEscape(b.OrderNumber), url.QueryEscape(code))
}

func (n *DefaultNotificationService) actionLink(b *models.Booking, action string) (string, error) {
	tok, err := n.Actions.Create(b.OrderNumber, action, token.ActionTTL)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/admin/action?order=%s&action=%s&token=%s",
		n.BaseURL, url.QueryEscape(b.OrderNumber), action, url.QueryEscape(tok)), nil
}

func (n *DefaultNotificationService) BookingReceived(b *models.Booking, manageCode string) error {
	link := n.manageLink(b, manageCode)
	subject := fmt.Sprintf("We received your booking %s", b.OrderNumber)
	text := fmt.Sprintf(
		"Hi %s,\n\nThanks for booking with Fobworks. Your order number is %s.\n"+
			"We'll visit on %s at %s.\n\nView or change your booking: %s\n",
		b.Name, b.OrderNumber, b.Date, b.Slot, link)
	html := fmt.Sprintf(
		`<p>Hi %s,</p><p>Thanks for booking with Fobworks. Your order number is <b>%s</b>.</p>`+
			`<p>We'll visit on <b>%s</b> at <b>%s</b>.</p>`+
			`<p><a href="%s">View or change your booking</a></p>`,
		b.Name, b.OrderNumber, b.Date, b.Slot, link)

	// The customer email and the admin alert are independent sends; one
	// failing must not suppress the other.
	var customerErr error
	if _, err := n.Mailer.Send(b.Email, b.Name, subject, text, html); err != nil {
		customerErr = fmt.Errorf("customer booking-received email: %w", err)
	}
	return errors.Join(customerErr, n.AdminNewBooking(b))
}

// AdminNewBooking alerts the admin inbox with one-click confirm/cancel links.
func (n *DefaultNotificationService) AdminNewBooking(b *models.Booking) error {
	if n.AdminEmail == "" {
		return nil
	}
	confirmLink, err := n.actionLink(b, token.ActionConfirm)
	if err != nil {
		return fmt.Errorf("minting confirm link: %w", err)
	}
	cancelLink, err := n.actionLink(b, token.ActionCancel)
	if err != nil {
		return fmt.Errorf("minting cancel link: %w", err)
	}

	subject := fmt.Sprintf("New booking %s — %s %s", b.OrderNumber, b.Date, b.Slot)
	text := fmt.Sprintf(
		"New booking %s\n%s <%s> %s\n%s\nService: %s\nDate: %s %s\n\nConfirm: %s\nCancel: %s\n",
		b.OrderNumber, b.Name, b.Email, b.Phone, b.Address, b.ServiceID, b.Date, b.Slot,
		confirmLink, cancelLink)
	html := fmt.Sprintf(
		`<p>New booking <b>%s</b></p><p>%s &lt;%s&gt; %s<br>%s</p>`+
			`<p>Service: %s<br>Date: %s %s</p>`+
			`<p><a href="%s">Confirm</a> | <a href="%s">Cancel</a></p>`,
		b.OrderNumber, b.Name, b.Email, b.Phone, b.Address, b.ServiceID, b.Date, b.Slot,
		confirmLink, cancelLink)

	if _, err := n.Mailer.Send(n.AdminEmail, "Fobworks admin", subject, text, html); err != nil {
		return fmt.Errorf("admin new-booking email: %w", err)
	}
	return nil
}

func (n *DefaultNotificationService) BookingConfirmed(b *models.Booking) error {
	subject := fmt.Sprintf("Booking %s confirmed", b.OrderNumber)
	text := fmt.Sprintf(
		"Hi %s,\n\nYour booking %s is confirmed for %s at %s. See you then!\n",
		b.Name, b.OrderNumber, b.Date, b.Slot)
	html := fmt.Sprintf(
		`<p>Hi %s,</p><p>Your booking <b>%s</b> is confirmed for <b>%s</b> at <b>%s</b>. See you then!</p>`,
		b.Name, b.OrderNumber, b.Date, b.Slot)
	_, err := n.Mailer.Send(b.Email, b.Name, subject, text, html)
	return err
}

func (n *DefaultNotificationService) BookingCancelled(b *models.Booking) error {
	subject := fmt.Sprintf("Booking %s cancelled", b.OrderNumber)
	text := fmt.Sprintf(
		"Hi %s,\n\nYour booking %s for %s at %s has been cancelled.\n"+
			"If this is unexpected, just book again or reply to this email.\n",
		b.Name, b.OrderNumber, b.Date, b.Slot)
	html := fmt.Sprintf(
		`<p>Hi %s,</p><p>Your booking <b>%s</b> for %s at %s has been cancelled.</p>`+
			`<p>If this is unexpected, just book again or reply to this email.</p>`,
		b.Name, b.OrderNumber, b.Date, b.Slot)
	_, err := n.Mailer.Send(b.Email, b.Name, subject, text, html)
	return err
}

func (n *DefaultNotificationService) Reminder(b *models.Booking) error {
	subject := fmt.Sprintf("Reminder: fob duplication visit tomorrow (%s)", b.OrderNumber)
	text := fmt.Sprintf(
		"Hi %s,\n\nA quick reminder: we'll visit %s on %s at %s.\n",
		b.Name, b.Address, b.Date, b.Slot)
	html := fmt.Sprintf(
		`<p>Hi %s,</p><p>A quick reminder: we'll visit %s on <b>%s</b> at <b>%s</b>.</p>`,
		b.Name, b.Address, b.Date, b.Slot)
	_, err := n.Mailer.Send(b.Email, b.Name, subject, text, html)
	return err
}
