package handlers_test

import (
	"strings"

	bookingRepo "fobworks/database/repository/booking"
	"fobworks/models"
	"fobworks/services/booking"
)

// mockBookingService is an in-memory stand-in for the booking engine.
type mockBookingService struct {
	bookings  map[string]*models.Booking
	slots     []string
	createErr error
}

func newMockBookingService(bookings ...*models.Booking) *mockBookingService {
	m := &mockBookingService{bookings: make(map[string]*models.Booking)}
	for _, b := range bookings {
		m.bookings[b.OrderNumber] = b
	}
	return m
}

func (m *mockBookingService) Availability(date string) ([]string, error) {
	return m.slots, nil
}

func (m *mockBookingService) Create(req models.BookingRequest) (*models.Booking, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	b := &models.Booking{
		OrderNumber: "FW-TEST1",
		Name:        req.Name,
		Email:       req.Email,
		Date:        req.Date,
		Slot:        req.Slot,
		Status:      models.StatusPending,
	}
	m.bookings[b.OrderNumber] = b
	return b, nil
}

func (m *mockBookingService) GetForCustomer(orderNumber, code string) (*models.Booking, error) {
	b, ok := m.bookings[strings.ToUpper(orderNumber)]
	if !ok || code != "good-code" {
		return nil, booking.ErrAccessDenied
	}
	return b, nil
}

func (m *mockBookingService) CancelForCustomer(orderNumber, code string) (*models.Booking, error) {
	b, err := m.GetForCustomer(orderNumber, code)
	if err != nil {
		return nil, err
	}
	b.Status = models.StatusCancelled
	return b, nil
}

func (m *mockBookingService) Reschedule(orderNumber, code string, req models.RescheduleRequest) (*models.Booking, error) {
	b, err := m.GetForCustomer(orderNumber, code)
	if err != nil {
		return nil, err
	}
	b.Date, b.Slot = req.Date, req.Slot
	return b, nil
}

func (m *mockBookingService) List(filter bookingRepo.ListFilter) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range m.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (m *mockBookingService) Get(orderNumber string) (*models.Booking, error) {
	b, ok := m.bookings[strings.ToUpper(orderNumber)]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	return b, nil
}

func (m *mockBookingService) SetStatus(orderNumber, status string) (*models.Booking, bool, error) {
	b, ok := m.bookings[strings.ToUpper(orderNumber)]
	if !ok {
		return nil, false, bookingRepo.ErrNotFound
	}
	if b.Status == status {
		return b, false, nil
	}
	if b.Status == models.StatusCancelled && status == models.StatusConfirmed {
		return nil, false, booking.ErrInvalidStatus
	}
	b.Status = status
	return b, true, nil
}

// mockNotifier records which notifications fired.
type mockNotifier struct {
	received  []string
	adminSent []string
	sendErr   error
}

func (m *mockNotifier) BookingReceived(b *models.Booking, manageCode string) error {
	m.received = append(m.received, b.OrderNumber)
	return m.sendErr
}

func (m *mockNotifier) AdminNewBooking(b *models.Booking) error {
	m.adminSent = append(m.adminSent, b.OrderNumber)
	return m.sendErr
}

func (m *mockNotifier) BookingConfirmed(b *models.Booking) error { return m.sendErr }
func (m *mockNotifier) BookingCancelled(b *models.Booking) error { return m.sendErr }
func (m *mockNotifier) Reminder(b *models.Booking) error         { return m.sendErr }
