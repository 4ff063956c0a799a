// Package repo implements the persistence layer for the beer catalog,
// backed by MongoDB. This file contains client bootstrapping helpers and the
// fixed database/collection wiring.
package repo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// The service stores everything in one collection; both names are part of
// the deployment contract and are not configurable.
const (
	databaseName   = "beers"
	collectionName = "beers"
)

// OpenMongo connects a MongoDB client with pool limits suitable for a small
// API and verifies the deployment with a bounded ping. The returned client
// holds the single long-lived connection pool shared by all handlers; the
// caller is responsible for Disconnect on shutdown.
func OpenMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(32).
		SetMaxConnIdleTime(5 * time.Minute)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, err
	}
	return client, nil
}

// BeerCollection returns the collection holding the beer documents.
func BeerCollection(client *mongo.Client) *mongo.Collection {
	return client.Database(databaseName).Collection(collectionName)
}
