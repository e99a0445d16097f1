package booking

import "errors"

var (
	// ErrInvalidInput marks request validation failures (bad date, unknown
	// service, slot outside business hours, ...).
	ErrInvalidInput = errors.New("invalid booking request")
	// ErrAccessDenied is returned for a wrong or missing manage code.
	ErrAccessDenied = errors.New("access denied")
	// ErrInvalidStatus is returned for a transition to an unknown status.
	ErrInvalidStatus = errors.New("invalid status")
)
