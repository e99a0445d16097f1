package models

// BookingRequest is the payload of the public booking form.
type BookingRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address" binding:"required"`

	ServiceID string   `json:"serviceId" binding:"required"`
	FobMake   string   `json:"fobMake"`
	Notes     string   `json:"notes"`
	PhotoURLs []string `json:"photoUrls"`

	Date string `json:"date" binding:"required"` // "YYYY-MM-DD"
	Slot string `json:"slot" binding:"required"` // "HH:MM"
}

// RescheduleRequest moves an existing booking to a new date/slot.
type RescheduleRequest struct {
	Date string `json:"date" binding:"required"`
	Slot string `json:"slot" binding:"required"`
}

// ServiceInput is the admin payload for creating or updating a catalog entry.
type ServiceInput struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	PriceCents  int64    `json:"priceCents" binding:"required"`
	FobTypes    []string `json:"fobTypes"`
	Active      *bool    `json:"active"`
}
