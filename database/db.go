package database

import (
	"context"
	"time"

	"yogasund/config"
	"yogasund/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// MongoClient is the shared MongoDB client. Repositories take collections
// from it after InitDB has run.
var MongoClient *mongo.Client

// InitDB connects to MongoDB and verifies the primary is reachable. The
// portal cannot serve content or community endpoints without it, so a
// failed connection is fatal.
func InitDB() {
	logger := utils.GetLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.AppConfig.DatabaseURL))
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logger.Fatal("Failed to ping MongoDB", zap.Error(err))
	}

	MongoClient = client
	logger.Info("Connected to MongoDB")
}
