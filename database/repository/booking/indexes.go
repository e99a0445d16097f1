package bookingRepo

import (
	"fmt"
	"time"

	"fobworks/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates indexes for fields frequently used in queries.
// The partial unique index over {date, slot} covers only live bookings, so
// a cancelled slot can be rebooked while a pending or confirmed one blocks
// double-booking at the database rather than in handler code.
func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "order_number", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "date", Value: 1}, {Key: "slot", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{
					"status": bson.M{"$in": bson.A{models.StatusPending, models.StatusConfirmed}},
				}),
		},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "email", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
