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

// VehicleStore defines the interface for vehicle data operations.
type VehicleStore interface {
	List(ctx context.Context, opts ListOptions) ([]models.Vehicle, int64, error)
	GetByID(ctx context.Context, id string) (*models.Vehicle, error)
	Insert(ctx context.Context, vehicle *models.Vehicle) error
	Replace(ctx context.Context, id string, vehicle *models.Vehicle) error
	Delete(ctx context.Context, id string) error
}

// MongoVehicleStore implements VehicleStore for MongoDB.
type MongoVehicleStore struct {
	Collection *mongo.Collection
	Refs       *RefResolver
}

func vehicleFilter(opts ListOptions) bson.M {
	filter := bson.M{}
	if hasFilter(opts.Status) && models.IsValidVehicleStatus(models.VehicleStatus(opts.Status)) {
		filter["status"] = opts.Status
	}
	if hasFilter(opts.Type) && models.IsValidVehicleType(models.VehicleType(opts.Type)) {
		filter["type"] = opts.Type
	}
	return filter
}

// List returns one page of vehicles, newest-created first, with the assigned
// driver reference expanded, plus the total match count.
func (s *MongoVehicleStore) List(ctx context.Context, opts ListOptions) ([]models.Vehicle, int64, error) {
	filter := vehicleFilter(opts)

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
	vehicles := []models.Vehicle{}
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, 0, err
	}

	if err := s.expand(ctx, vehicles); err != nil {
		return nil, 0, err
	}
	return vehicles, total, nil
}

// GetByID finds a vehicle by its object id with the assigned driver expanded.
func (s *MongoVehicleStore) GetByID(ctx context.Context, id string) (*models.Vehicle, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	var vehicle models.Vehicle
	if err := s.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&vehicle); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	one := []models.Vehicle{vehicle}
	if err := s.expand(ctx, one); err != nil {
		return nil, err
	}
	return &one[0], nil
}

// Insert persists a new vehicle. VIN and plate uniqueness is enforced by
// the store's indexes; a collision surfaces as ErrDuplicate and leaves the
// store unchanged.
func (s *MongoVehicleStore) Insert(ctx context.Context, vehicle *models.Vehicle) error {
	now := time.Now()
	vehicle.ID = primitive.NewObjectID()
	if vehicle.Status == "" {
		vehicle.Status = models.VehicleAvailable
	}
	vehicle.CreatedAt = now
	vehicle.UpdatedAt = now

	if _, err := s.Collection.InsertOne(ctx, vehicle); err != nil {
		return wrapWriteError(err)
	}

	one := []models.Vehicle{*vehicle}
	if err := s.expand(ctx, one); err != nil {
		return err
	}
	*vehicle = one[0]
	return nil
}

// Replace overwrites a vehicle by id.
func (s *MongoVehicleStore) Replace(ctx context.Context, id string, vehicle *models.Vehicle) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	vehicle.ID = objectID
	vehicle.UpdatedAt = time.Now()

	result, err := s.Collection.ReplaceOne(ctx, bson.M{"_id": objectID}, vehicle)
	if err != nil {
		return wrapWriteError(err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	one := []models.Vehicle{*vehicle}
	if err := s.expand(ctx, one); err != nil {
		return err
	}
	*vehicle = one[0]
	return nil
}

// Delete removes a vehicle by id.
func (s *MongoVehicleStore) Delete(ctx context.Context, id string) error {
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

func (s *MongoVehicleStore) expand(ctx context.Context, vehicles []models.Vehicle) error {
	driverIDs := make([]primitive.ObjectID, 0, len(vehicles))
	for _, v := range vehicles {
		if v.AssignedDriver != nil {
			driverIDs = append(driverIDs, *v.AssignedDriver)
		}
	}
	driverRefs, err := s.Refs.DriverRefs(ctx, driverIDs)
	if err != nil {
		return err
	}
	for i := range vehicles {
		if vehicles[i].AssignedDriver != nil {
			vehicles[i].AssignedDriverInfo = driverRefs[*vehicles[i].AssignedDriver]
		}
	}
	return nil
}
