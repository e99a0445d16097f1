package catalogRepo

import (
	"fmt"
	"time"

	"fobworks/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new catalog entry.
func (r *MongoCatalogRepo) Create(svc *models.ServiceOffering) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	svc.CreatedAt = now
	svc.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, svc); err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

// GetByID retrieves a catalog entry by its unique ID.
func (r *MongoCatalogRepo) GetByID(id string) (*models.ServiceOffering, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var svc models.ServiceOffering
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&svc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service %s: %w", id, err)
	}
	return &svc, nil
}

// List returns catalog entries sorted by name.
func (r *MongoCatalogRepo) List(activeOnly bool) ([]models.ServiceOffering, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	query := bson.M{}
	if activeOnly {
		query["active"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.ServiceOffering
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}

// Update modifies an existing catalog entry.
func (r *MongoCatalogRepo) Update(svc *models.ServiceOffering) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	svc.UpdatedAt = time.Now()
	filter := bson.M{"id": svc.ID}
	update := bson.M{"$set": svc}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update service %s: %w", svc.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a catalog entry by its ID.
func (r *MongoCatalogRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete service %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
