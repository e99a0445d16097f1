package models

import "time"

// ServiceOffering is one entry of the editable service catalog, e.g.
// "Apartment fob copy" or "Garage remote duplication".
type ServiceOffering struct {
	ID          string   `bson:"id" json:"id"`
	Name        string   `bson:"name" json:"name"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	PriceCents  int64    `bson:"price_cents" json:"priceCents"`
	FobTypes    []string `bson:"fob_types,omitempty" json:"fobTypes,omitempty"`
	Active      bool     `bson:"active" json:"active"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
