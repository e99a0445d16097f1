package bookingRepo

import (
	"fmt"
	"time"

	"fobworks/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByOrderNumber retrieves a booking by its order number.
func (r *MongoBookingRepo) GetByOrderNumber(orderNumber string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"order_number": orderNumber}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", orderNumber, err)
	}
	return &booking, nil
}

// List returns bookings matching the filter, newest appointment first.
func (r *MongoBookingRepo) List(filter ListFilter) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Date != "" {
		query["date"] = filter.Date
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "slot", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// BookedSlots returns the slots taken by live bookings on the given date.
func (r *MongoBookingRepo) BookedSlots(date string) ([]string, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	query := bson.M{
		"date":   date,
		"status": bson.M{"$in": bson.A{models.StatusPending, models.StatusConfirmed}},
	}
	opts := options.Find().SetProjection(bson.M{"slot": 1})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query booked slots: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []struct {
		Slot string `bson:"slot"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode booked slots: %w", err)
	}

	slots := make([]string, 0, len(docs))
	for _, d := range docs {
		slots = append(slots, d.Slot)
	}
	return slots, nil
}
