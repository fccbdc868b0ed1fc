// internal/database/connection.go
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/threadly/clothing-store-backend/internal/config"
)

// Initialize connects to the document store and returns a handle to the
// configured database. When no DATABASE_URL is set it returns a nil client
// and nil database without error: the rest of the application treats that
// as a degraded-but-running state, matching the read paths that must keep
// answering with empty results.
func Initialize(cfg config.DatabaseConfig) (*mongo.Client, *mongo.Database, error) {
	if cfg.URL == "" {
		logrus.Warn("DATABASE_URL not set, running without a document store")
		return nil, nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectTimeout)*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URL))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to document store: %w", err)
	}

	// Test connection
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, nil, fmt.Errorf("failed to ping document store: %w", err)
	}

	logrus.WithField("database", cfg.Name).Info("Document store connection established")
	return client, client.Database(cfg.Name), nil
}

func Close(client *mongo.Client) {
	if client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Disconnect(ctx); err != nil {
		logrus.WithError(err).Error("Error closing document store connection")
	} else {
		logrus.Info("Document store connection closed")
	}
}
