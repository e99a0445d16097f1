package database

import (
	"context"
	"time"

	"fobworks/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoClient is the shared MongoDB client, set once by InitDB.
var MongoClient *mongo.Client

// InitDB connects to MongoDB and verifies the connection. Failure is fatal:
// every surface of the service needs the database.
func InitDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.AppConfig.DatabaseURL))
	if err != nil {
		zap.L().Fatal("mongo connect failed", zap.Error(err))
	}
	if err := client.Ping(ctx, nil); err != nil {
		zap.L().Fatal("mongo ping failed", zap.Error(err))
	}
	MongoClient = client
	zap.L().Info("connected to MongoDB", zap.String("database", config.AppConfig.DatabaseName))
}

// Collection returns a handle in the configured database.
func Collection(name string) *mongo.Collection {
	return MongoClient.Database(config.AppConfig.DatabaseName).Collection(name)
}
