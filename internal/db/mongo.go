package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// NewMongo connects to uri. An unreachable server is logged and tolerated:
// each store call then fails on its own and surfaces as a 500.
func NewMongo(ctx context.Context, uri string, log *zap.Logger) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Error("[mongo] ping failed", zap.Error(err))
		return client, nil
	}

	log.Info("[mongo] connected to MongoDB")
	return client, nil
}
