package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fleetops/fleet-backoffice/internal/models"
)

// DriverStore defines the interface for driver data operations.
type DriverStore interface {
	List(ctx context.Context, opts ListOptions) ([]models.Driver, int64, error)
	GetByID(ctx context.Context, id string) (*models.Driver, error)
	Insert(ctx context.Context, driver *models.Driver) error
	Replace(ctx context.Context, id string, driver *models.Driver) error
	Delete(ctx context.Context, id string) error
}

// MongoDriverStore implements DriverStore for MongoDB.
type MongoDriverStore struct {
	Collection *mongo.Collection
	Refs       *RefResolver
}

// driverFilter translates list options into a store query. The status
// filter applies to the employment status, not the duty status.
func driverFilter(opts ListOptions) bson.M {
	filter := bson.M{}
	if hasFilter(opts.Status) && models.IsValidEmploymentStatus(models.EmploymentStatus(opts.Status)) {
		filter["employment.status"] = opts.Status
	}
	return filter
}

// List returns one page of drivers, newest-created first, with the assigned
// vehicle reference expanded, plus the total match count.
func (s *MongoDriverStore) List(ctx context.Context, opts ListOptions) ([]models.Driver, int64, error) {
	filter := driverFilter(opts)

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
	drivers := []models.Driver{}
	if err := cursor.All(ctx, &drivers); err != nil {
		return nil, 0, err
	}

	if err := s.expand(ctx, drivers); err != nil {
		return nil, 0, err
	}
	return drivers, total, nil
}

// GetByID finds a driver by its object id with the assigned vehicle expanded.
func (s *MongoDriverStore) GetByID(ctx context.Context, id string) (*models.Driver, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	var driver models.Driver
	if err := s.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&driver); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	one := []models.Driver{driver}
	if err := s.expand(ctx, one); err != nil {
		return nil, err
	}
	return &one[0], nil
}

// Insert persists a new driver. Email and license-number uniqueness is
// enforced by the store's indexes, not a pre-check.
func (s *MongoDriverStore) Insert(ctx context.Context, driver *models.Driver) error {
	now := time.Now()
	driver.ID = primitive.NewObjectID()
	if driver.Employment.Status == "" {
		driver.Employment.Status = models.EmploymentActive
	}
	if driver.CurrentStatus == "" {
		driver.CurrentStatus = models.DriverOffDuty
	}
	if driver.Performance.Rating == 0 {
		driver.Performance.Rating = 5
	}
	driver.CreatedAt = now
	driver.UpdatedAt = now

	if _, err := s.Collection.InsertOne(ctx, driver); err != nil {
		return wrapWriteError(err)
	}

	one := []models.Driver{*driver}
	if err := s.expand(ctx, one); err != nil {
		return err
	}
	*driver = one[0]
	return nil
}

// Replace overwrites a driver by id.
func (s *MongoDriverStore) Replace(ctx context.Context, id string, driver *models.Driver) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	driver.ID = objectID
	driver.UpdatedAt = time.Now()

	result, err := s.Collection.ReplaceOne(ctx, bson.M{"_id": objectID}, driver)
	if err != nil {
		return wrapWriteError(err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	one := []models.Driver{*driver}
	if err := s.expand(ctx, one); err != nil {
		return err
	}
	*driver = one[0]
	return nil
}

// Delete removes a driver by id.
func (s *MongoDriverStore) Delete(ctx context.Context, id string) error {
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

func (s *MongoDriverStore) expand(ctx context.Context, drivers []models.Driver) error {
	vehicleIDs := make([]primitive.ObjectID, 0, len(drivers))
	for _, d := range drivers {
		if d.AssignedVehicle != nil {
			vehicleIDs = append(vehicleIDs, *d.AssignedVehicle)
		}
	}
	vehicleRefs, err := s.Refs.VehicleRefs(ctx, vehicleIDs)
	if err != nil {
		return err
	}
	for i := range drivers {
		if drivers[i].AssignedVehicle != nil {
			drivers[i].AssignedVehicleInfo = vehicleRefs[*drivers[i].AssignedVehicle]
		}
	}
	return nil
}
