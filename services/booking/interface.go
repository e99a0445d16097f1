package booking

import (
	bookingRepo "fobworks/database/repository/booking"
	"fobworks/models"
)

// Service is the booking engine behind both the public form and the admin
// dashboard.
type Service interface {
	// Availability returns the open visit slots for a date.
	Availability(date string) ([]string, error)
	// Create validates and stores a new booking, then emails the customer
	// and the admin. The returned booking is safe to show the customer.
	Create(req models.BookingRequest) (*models.Booking, error)

	// Self-service flow, authenticated by the emailed manage code.
	GetForCustomer(orderNumber, code string) (*models.Booking, error)
	CancelForCustomer(orderNumber, code string) (*models.Booking, error)
	Reschedule(orderNumber, code string, req models.RescheduleRequest) (*models.Booking, error)

	// Admin operations.
	List(filter bookingRepo.ListFilter) ([]models.Booking, error)
	Get(orderNumber string) (*models.Booking, error)
	// SetStatus transitions a booking to confirmed or cancelled. changed is
	// false when the booking was already in the requested state.
	SetStatus(orderNumber, status string) (b *models.Booking, changed bool, err error)
}

// ReminderScheduler queues the day-before reminder email for a confirmed
// booking.
type ReminderScheduler interface {
	ScheduleReminder(b *models.Booking) error
}
