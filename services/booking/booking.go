package booking

import (
	"fmt"
	"strings"

	bookingRepo "fobworks/database/repository/booking"
	"fobworks/models"
	"fobworks/services/notification"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	Catalog   CatalogLookup
	Notifier  notification.Service
	Reminders ReminderScheduler
	Logger    *zap.Logger
}

// CatalogLookup is the slice of the catalog the booking engine needs.
type CatalogLookup interface {
	GetByID(id string) (*models.ServiceOffering, error)
}

func (s *DefaultBookingService) Create(req models.BookingRequest) (*models.Booking, error) {
	if _, err := validateDate(req.Date); err != nil {
		return nil, err
	}
	if !validSlot(req.Slot) {
		return nil, fmt.Errorf("%w: slot %q is outside business hours", ErrInvalidInput, req.Slot)
	}

	svc, err := s.Catalog.GetByID(req.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown service %q", ErrInvalidInput, req.ServiceID)
	}
	if !svc.Active {
		return nil, fmt.Errorf("%w: service %q is not bookable", ErrInvalidInput, svc.Name)
	}

	manageCode := uuid.NewString()
	codeHash, err := bcrypt.GenerateFromPassword([]byte(manageCode), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing manage code: %w", err)
	}

	b := &models.Booking{
		OrderNumber:    newOrderNumber(),
		Name:           strings.TrimSpace(req.Name),
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:          strings.TrimSpace(req.Phone),
		Address:        strings.TrimSpace(req.Address),
		ServiceID:      req.ServiceID,
		FobMake:        strings.TrimSpace(req.FobMake),
		Notes:          strings.TrimSpace(req.Notes),
		PhotoURLs:      req.PhotoURLs,
		Date:           req.Date,
		Slot:           req.Slot,
		Status:         models.StatusPending,
		ManageCodeHash: string(codeHash),
	}

	// The insert is the real availability check: the unique slot index
	// rejects the second of two racing bookings with ErrSlotTaken.
	if err := s.Repo.Create(b); err != nil {
		return nil, err
	}

	if err := s.Notifier.BookingReceived(b, manageCode); err != nil {
		s.Logger.Error("booking-received notification failed",
			zap.String("order", b.OrderNumber), zap.Error(err))
	}

	return b, nil
}

func (s *DefaultBookingService) List(filter bookingRepo.ListFilter) ([]models.Booking, error) {
	return s.Repo.List(filter)
}

func (s *DefaultBookingService) Get(orderNumber string) (*models.Booking, error) {
	return s.Repo.GetByOrderNumber(strings.ToUpper(orderNumber))
}

// SetStatus transitions a booking and sends the matching customer email.
// Email delivery failure is logged and swallowed: the transition has already
// committed and is not rolled back because notification failed.
func (s *DefaultBookingService) SetStatus(orderNumber, status string) (*models.Booking, bool, error) {
	if status != models.StatusConfirmed && status != models.StatusCancelled {
		return nil, false, ErrInvalidStatus
	}
	orderNumber = strings.ToUpper(orderNumber)

	b, err := s.Repo.GetByOrderNumber(orderNumber)
	if err != nil {
		return nil, false, err
	}
	// Cancelled is terminal. Resurrecting one would also re-enter the live
	// slot index, whose slot may have been rebooked in the meantime.
	if b.Status == models.StatusCancelled && status == models.StatusConfirmed {
		return nil, false, fmt.Errorf("%w: booking %s is cancelled", ErrInvalidStatus, orderNumber)
	}

	changed, err := s.Repo.UpdateStatus(orderNumber, status)
	if err != nil {
		return nil, false, err
	}
	b, err = s.Repo.GetByOrderNumber(orderNumber)
	if err != nil {
		return nil, false, err
	}
	if !changed {
		return b, false, nil
	}

	switch status {
	case models.StatusConfirmed:
		if err := s.Notifier.BookingConfirmed(b); err != nil {
			s.Logger.Error("confirmation email failed",
				zap.String("order", b.OrderNumber), zap.Error(err))
		}
		if s.Reminders != nil {
			if err := s.Reminders.ScheduleReminder(b); err != nil {
				s.Logger.Error("reminder scheduling failed",
					zap.String("order", b.OrderNumber), zap.Error(err))
			}
		}
	case models.StatusCancelled:
		if err := s.Notifier.BookingCancelled(b); err != nil {
			s.Logger.Error("cancellation email failed",
				zap.String("order", b.OrderNumber), zap.Error(err))
		}
	}
	return b, true, nil
}
