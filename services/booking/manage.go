package booking

import (
	"fmt"
	"strings"

	"fobworks/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// authorize loads a booking and checks the customer's manage code against
// the stored bcrypt hash. Any failure collapses to ErrAccessDenied so the
// response never reveals whether the order exists.
func (s *DefaultBookingService) authorize(orderNumber, code string) (*models.Booking, error) {
	if code == "" {
		return nil, ErrAccessDenied
	}
	b, err := s.Repo.GetByOrderNumber(strings.ToUpper(orderNumber))
	if err != nil {
		return nil, ErrAccessDenied
	}
	if bcrypt.CompareHashAndPassword([]byte(b.ManageCodeHash), []byte(code)) != nil {
		return nil, ErrAccessDenied
	}
	return b, nil
}

func (s *DefaultBookingService) GetForCustomer(orderNumber, code string) (*models.Booking, error) {
	return s.authorize(orderNumber, code)
}

func (s *DefaultBookingService) CancelForCustomer(orderNumber, code string) (*models.Booking, error) {
	b, err := s.authorize(orderNumber, code)
	if err != nil {
		return nil, err
	}
	b, _, err = s.SetStatus(b.OrderNumber, models.StatusCancelled)
	return b, err
}

func (s *DefaultBookingService) Reschedule(orderNumber, code string, req models.RescheduleRequest) (*models.Booking, error) {
	b, err := s.authorize(orderNumber, code)
	if err != nil {
		return nil, err
	}
	if b.Status == models.StatusCancelled {
		return nil, fmt.Errorf("%w: cancelled bookings cannot be rescheduled", ErrInvalidInput)
	}
	if _, err := validateDate(req.Date); err != nil {
		return nil, err
	}
	if !validSlot(req.Slot) {
		return nil, fmt.Errorf("%w: slot %q is outside business hours", ErrInvalidInput, req.Slot)
	}

	if err := s.Repo.Reschedule(b.OrderNumber, req.Date, req.Slot); err != nil {
		return nil, err
	}
	b, err = s.Repo.GetByOrderNumber(b.OrderNumber)
	if err != nil {
		return nil, err
	}

	// Re-send the confirmation with the new date so the customer's latest
	// email is authoritative.
	if b.Status == models.StatusConfirmed {
		if err := s.Notifier.BookingConfirmed(b); err != nil {
			s.Logger.Error("reschedule email failed",
				zap.String("order", b.OrderNumber), zap.Error(err))
		}
	}
	return b, nil
}
