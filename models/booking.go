package models

import "time"

// Booking statuses. A booking starts pending; confirmed bookings may still
// be cancelled, but cancelled is terminal. Repeat transitions are idempotent
// no-ops.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Booking represents a scheduled on-site fob duplication appointment.
type Booking struct {
	OrderNumber string `bson:"order_number" json:"orderNumber"` // e.g. "FW-7G2K4"
	Name        string `bson:"name" json:"name"`
	Email       string `bson:"email" json:"email"`
	Phone       string `bson:"phone" json:"phone"`
	Address     string `bson:"address" json:"address"`

	ServiceID string   `bson:"service_id" json:"serviceId"`
	FobMake   string   `bson:"fob_make,omitempty" json:"fobMake,omitempty"`
	Notes     string   `bson:"notes,omitempty" json:"notes,omitempty"`
	PhotoURLs []string `bson:"photo_urls,omitempty" json:"photoUrls,omitempty"`

	Date string `bson:"date" json:"date"` // "YYYY-MM-DD"
	Slot string `bson:"slot" json:"slot"` // "HH:MM", start of the visit window

	Status string `bson:"status" json:"status"`

	// ManageCodeHash is the bcrypt hash of the self-service code emailed to
	// the customer. The raw code never touches the database.
	ManageCodeHash string `bson:"manage_code_hash" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// Public returns a copy safe for customer-facing responses.
func (b Booking) Public() Booking {
	b.ManageCodeHash = ""
	return b
}
