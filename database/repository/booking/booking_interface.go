package bookingRepo

import "fobworks/models"

// ListFilter narrows admin booking listings.
type ListFilter struct {
	Status string // empty = any
	Date   string // empty = any, otherwise "YYYY-MM-DD"
}

// BookingRepository defines data access for bookings.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByOrderNumber(orderNumber string) (*models.Booking, error)
	List(filter ListFilter) ([]models.Booking, error)
	// BookedSlots returns the slots already taken (pending or confirmed)
	// on the given date.
	BookedSlots(date string) ([]string, error)
	// UpdateStatus transitions a booking. It reports whether the document
	// actually changed, so callers can distinguish a real transition from
	// an idempotent repeat.
	UpdateStatus(orderNumber, status string) (changed bool, err error)
	// Reschedule moves a booking to a new date/slot. It relies on the same
	// unique slot index as Create, so a taken slot surfaces ErrSlotTaken.
	Reschedule(orderNumber, date, slot string) error
}
