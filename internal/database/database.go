package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// New connects to the document store and verifies the connection with a
// ping. Callers own the returned handle and should disconnect its client
// on shutdown.
func New(ctx context.Context, uri, name string) (*mongo.Database, error) {
	if uri == "" {
		return nil, errors.New("connection string is not configured")
	}

	if name == "" {
		return nil, errors.New("database name is not configured")
	}

	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return client.Database(name), nil
}
