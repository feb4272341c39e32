package db

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fleetops/fleet-backoffice/internal/models"
)

// DeliveryStore defines the interface for delivery data operations.
type DeliveryStore interface {
	List(ctx context.Context, opts ListOptions) ([]models.Delivery, int64, error)
	GetByID(ctx context.Context, id string) (*models.Delivery, error)
	Insert(ctx context.Context, delivery *models.Delivery) error
	Replace(ctx context.Context, id string, delivery *models.Delivery) error
	Delete(ctx context.Context, id string) error
}

// MongoDeliveryStore implements DeliveryStore for MongoDB.
type MongoDeliveryStore struct {
	Collection *mongo.Collection
	Refs       *RefResolver
}

// deliveryFilter translates list options into a store query. Unrecognized
// status values are treated as no filter.
func deliveryFilter(opts ListOptions) bson.M {
	filter := bson.M{}
	if hasFilter(opts.Status) && models.IsValidDeliveryStatus(models.DeliveryStatus(opts.Status)) {
		filter["status"] = opts.Status
	}
	if opts.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(opts.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"deliveryId": pattern},
			bson.M{"customer.name": pattern},
		}
	}
	return filter
}

// List returns one page of deliveries, newest-created first, with driver and
// vehicle references expanded, plus the total match count.
func (s *MongoDeliveryStore) List(ctx context.Context, opts ListOptions) ([]models.Delivery, int64, error) {
	filter := deliveryFilter(opts)

	total, err := s.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(opts.skip()).
		SetLimit(int64(opts.limit()))
	cursor, err := s.Collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	deliveries := []models.Delivery{}
	if err := cursor.All(ctx, &deliveries); err != nil {
		return nil, 0, err
	}

	if err := s.expand(ctx, deliveries); err != nil {
		return nil, 0, err
	}
	return deliveries, total, nil
}

// GetByID finds a delivery by its object id with references expanded.
func (s *MongoDeliveryStore) GetByID(ctx context.Context, id string) (*models.Delivery, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	var delivery models.Delivery
	if err := s.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&delivery); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	one := []models.Delivery{delivery}
	if err := s.expand(ctx, one); err != nil {
		return nil, err
	}
	return &one[0], nil
}

// Insert persists a new delivery. The total amount is recomputed from the
// line items immediately before the write; the caller-supplied value is
// never trusted.
func (s *MongoDeliveryStore) Insert(ctx context.Context, delivery *models.Delivery) error {
	now := time.Now()
	delivery.ID = primitive.NewObjectID()
	if delivery.Status == "" {
		delivery.Status = models.DeliveryScheduled
	}
	delivery.CreatedAt = now
	delivery.UpdatedAt = now
	delivery.RecalculateTotal()

	if _, err := s.Collection.InsertOne(ctx, delivery); err != nil {
		return wrapWriteError(err)
	}

	one := []models.Delivery{*delivery}
	if err := s.expand(ctx, one); err != nil {
		return err
	}
	*delivery = one[0]
	return nil
}

// Replace overwrites a delivery by id, recomputing the total amount first.
// This is the single update path, so the derived-field invariant holds for
// partial updates that touch line items as well.
func (s *MongoDeliveryStore) Replace(ctx context.Context, id string, delivery *models.Delivery) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	delivery.ID = objectID
	delivery.UpdatedAt = time.Now()
	delivery.RecalculateTotal()

	result, err := s.Collection.ReplaceOne(ctx, bson.M{"_id": objectID}, delivery)
	if err != nil {
		return wrapWriteError(err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	one := []models.Delivery{*delivery}
	if err := s.expand(ctx, one); err != nil {
		return err
	}
	*delivery = one[0]
	return nil
}

// Delete removes a delivery by id.
func (s *MongoDeliveryStore) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	result, err := s.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// expand attaches driver and vehicle projections. A dangling reference
// leaves the expansion nil rather than failing the read.
func (s *MongoDeliveryStore) expand(ctx context.Context, deliveries []models.Delivery) error {
	driverIDs := make([]primitive.ObjectID, 0, len(deliveries))
	vehicleIDs := make([]primitive.ObjectID, 0, len(deliveries))
	for _, d := range deliveries {
		driverIDs = append(driverIDs, d.Driver)
		vehicleIDs = append(vehicleIDs, d.Vehicle)
	}

	driverRefs, err := s.Refs.DriverRefs(ctx, driverIDs)
	if err != nil {
		return err
	}
	vehicleRefs, err := s.Refs.VehicleRefs(ctx, vehicleIDs)
	if err != nil {
		return err
	}
	for i := range deliveries {
		deliveries[i].DriverInfo = driverRefs[deliveries[i].Driver]
		deliveries[i].VehicleInfo = vehicleRefs[deliveries[i].Vehicle]
	}
	return nil
}
