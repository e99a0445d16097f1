package bookingRepo

import (
	"context"
	"errors"
	"time"

	"fobworks/database"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ErrSlotTaken is returned when an insert or reschedule collides with an
// existing non-cancelled booking on the same date/slot. The unique index in
// ensureIndexes makes the availability check race-safe: two concurrent
// bookings for the same slot cannot both commit.
var ErrSlotTaken = errors.New("slot already booked")

// ErrNotFound is returned when no booking matches the given order number.
var ErrNotFound = errors.New("booking not found")

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	repo := &MongoBookingRepo{coll: database.Collection("bookings")}

	if err := repo.ensureIndexes(); err != nil {
		zap.L().Warn("booking index creation failed", zap.Error(err))
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
