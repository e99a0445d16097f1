package bookingRepo

import (
	"fmt"
	"time"

	"fobworks/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new booking document. A duplicate-key collision on the
// live {date, slot} index maps to ErrSlotTaken.
func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, booking)
	if mongo.IsDuplicateKeyError(err) {
		return ErrSlotTaken
	}
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// UpdateStatus transitions a booking to the given status. MatchedCount zero
// means the order does not exist; ModifiedCount zero with a match means the
// booking was already in the requested state. Moving a booking back into a
// live status can collide with the slot index, so duplicate-key errors map
// to ErrSlotTaken here just as they do on insert.
func (r *MongoBookingRepo) UpdateStatus(orderNumber, status string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"order_number": orderNumber}
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if mongo.IsDuplicateKeyError(err) {
		return false, ErrSlotTaken
	}
	if err != nil {
		return false, fmt.Errorf("failed to update booking %s: %w", orderNumber, err)
	}
	if result.MatchedCount == 0 {
		return false, ErrNotFound
	}
	return result.ModifiedCount > 0, nil
}

// Reschedule moves a booking to a new date/slot.
func (r *MongoBookingRepo) Reschedule(orderNumber, date, slot string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"order_number": orderNumber}
	update := bson.M{"$set": bson.M{"date": date, "slot": slot, "updated_at": time.Now()}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if mongo.IsDuplicateKeyError(err) {
		return ErrSlotTaken
	}
	if err != nil {
		return fmt.Errorf("failed to reschedule booking %s: %w", orderNumber, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
