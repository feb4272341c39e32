package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Business-key prefixes per entity kind.
const (
	PrefixDelivery = "D"
	PrefixVehicle  = "V"
	PrefixDriver   = "EMP"
)

// SequenceStore issues monotonically increasing, human-readable business
// keys per entity kind. Generation is a single atomic increment, so
// concurrent creators can never observe the same key.
type SequenceStore interface {
	Next(ctx context.Context, prefix string) (string, error)
}

// MongoSequenceStore implements SequenceStore on a counters collection,
// one document per prefix.
type MongoSequenceStore struct {
	Collection *mongo.Collection
}

// Next increments the counter for the given prefix and returns the
// formatted business key. The counter document is created on first use.
func (s *MongoSequenceStore) Next(ctx context.Context, prefix string) (string, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := s.Collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": prefix},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return "", fmt.Errorf("next sequence for %s: %w", prefix, err)
	}

	return FormatBusinessKey(prefix, counter.Seq), nil
}

// FormatBusinessKey renders the Nth key of a kind as <PREFIX>-<1000+N>,
// zero-padded to at least four digits, so the first record is <PREFIX>-1001.
func FormatBusinessKey(prefix string, seq int64) string {
	return fmt.Sprintf("%s-%04d", prefix, 1000+seq)
}
