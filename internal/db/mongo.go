package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectMongo connects to MongoDB and verifies the connection with a ping.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo.Connect error: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		return nil, fmt.Errorf("mongo.Ping error: %w", err)
	}
	return client, nil
}

// EnsureIndexes creates the unique indexes that back the business-key and
// uniqueness invariants. Safe to call on every startup.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		"deliveries": {
			{Keys: bson.D{{Key: "deliveryId", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		"drivers": {
			{Keys: bson.D{{Key: "employeeId", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "personalInfo.email", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "license.number", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		"vehicles": {
			{Keys: bson.D{{Key: "vehicleId", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "vin", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "licensePlate", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		"products": {
			{Keys: bson.D{{Key: "productId", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		"users": {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
	}

	for name, models := range indexes {
		if _, err := database.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes for %s: %w", name, err)
		}
	}
	return nil
}
