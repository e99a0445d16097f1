package catalogRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fobworks/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ErrNotFound is returned when no catalog entry matches the given id.
var ErrNotFound = errors.New("service not found")

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	coll *mongo.Collection
}

// NewMongoCatalogRepo creates a new instance of CatalogRepository using MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	repo := &MongoCatalogRepo{coll: database.Collection("services")}

	if err := repo.ensureIndexes(); err != nil {
		zap.L().Warn("catalog index creation failed", zap.Error(err))
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCatalogRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "active", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
