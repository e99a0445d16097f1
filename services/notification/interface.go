package notification

import "fobworks/models"

// Service sends booking lifecycle emails. Every method reports failure as an
// error the caller may log and ignore: a failed notification never rolls
// back the state change that triggered it.
type Service interface {
	// BookingReceived emails the customer their order number and manage
	// link, and alerts the admin with confirm/cancel action links.
	BookingReceived(b *models.Booking, manageCode string) error
	// AdminNewBooking (re)sends the admin alert with fresh action links.
	AdminNewBooking(b *models.Booking) error
	BookingConfirmed(b *models.Booking) error
	BookingCancelled(b *models.Booking) error
	Reminder(b *models.Booking) error
}
