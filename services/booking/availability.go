package booking

import (
	"fmt"
	"time"
)

// Visit slots. The crew works hourly visits; Sundays are closed and
// bookings open at most bookingHorizonDays ahead.
var visitSlots = []string{
	"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00",
}

const bookingHorizonDays = 60

// validateDate parses and bounds-checks a requested visit date.
func validateDate(date string) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad date %q", ErrInvalidInput, date)
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	if day.Before(today) {
		return time.Time{}, fmt.Errorf("%w: date %s is in the past", ErrInvalidInput, date)
	}
	if day.After(today.AddDate(0, 0, bookingHorizonDays)) {
		return time.Time{}, fmt.Errorf("%w: date %s is too far ahead", ErrInvalidInput, date)
	}
	if day.Weekday() == time.Sunday {
		return time.Time{}, fmt.Errorf("%w: closed on Sundays", ErrInvalidInput)
	}
	return day, nil
}

func validSlot(slot string) bool {
	for _, s := range visitSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// Availability returns the open slots for a date. The result is advisory:
// the unique slot index enforced at insert time is what actually prevents
// two customers racing for the same slot.
func (s *DefaultBookingService) Availability(date string) ([]string, error) {
	if _, err := validateDate(date); err != nil {
		return nil, err
	}

	booked, err := s.Repo.BookedSlots(date)
	if err != nil {
		return nil, err
	}
	taken := make(map[string]bool, len(booked))
	for _, slot := range booked {
		taken[slot] = true
	}

	open := make([]string, 0, len(visitSlots))
	for _, slot := range visitSlots {
		if !taken[slot] {
			open = append(open, slot)
		}
	}
	return open, nil
}
