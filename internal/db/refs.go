package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fleetops/fleet-backoffice/internal/models"
)

// RefResolver batch-resolves cross-entity references into the projections
// attached to list and get responses. References to deleted entities simply
// resolve to nothing; the caller leaves the expansion nil.
type RefResolver struct {
	Drivers    *mongo.Collection
	Vehicles   *mongo.Collection
	Deliveries *mongo.Collection
	Users      *mongo.Collection
}

// DriverRefs resolves driver ids to name projections.
func (r *RefResolver) DriverRefs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*models.DriverRef, error) {
	refs := make(map[primitive.ObjectID]*models.DriverRef)
	if len(ids) == 0 {
		return refs, nil
	}
	proj := options.Find().SetProjection(bson.M{
		"personalInfo.firstName": 1,
		"personalInfo.lastName":  1,
	})
	cursor, err := r.Drivers.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, proj)
	if err != nil {
		return nil, err
	}
	var drivers []models.Driver
	if err := cursor.All(ctx, &drivers); err != nil {
		return nil, err
	}
	for _, d := range drivers {
		refs[d.ID] = &models.DriverRef{
			ID:        d.ID,
			FirstName: d.PersonalInfo.FirstName,
			LastName:  d.PersonalInfo.LastName,
		}
	}
	return refs, nil
}

// VehicleRefs resolves vehicle ids to identity projections.
func (r *RefResolver) VehicleRefs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*models.VehicleRef, error) {
	refs := make(map[primitive.ObjectID]*models.VehicleRef)
	if len(ids) == 0 {
		return refs, nil
	}
	proj := options.Find().SetProjection(bson.M{
		"vehicleId": 1,
		"make":      1,
		"model":     1,
	})
	cursor, err := r.Vehicles.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, proj)
	if err != nil {
		return nil, err
	}
	var vehicles []models.Vehicle
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, err
	}
	for _, v := range vehicles {
		refs[v.ID] = &models.VehicleRef{
			ID:        v.ID,
			VehicleID: v.VehicleID,
			Make:      v.Make,
			Model:     v.Model,
		}
	}
	return refs, nil
}

// DeliveryRefs resolves delivery ids to business-key projections.
func (r *RefResolver) DeliveryRefs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*models.DeliveryRef, error) {
	refs := make(map[primitive.ObjectID]*models.DeliveryRef)
	if len(ids) == 0 {
		return refs, nil
	}
	proj := options.Find().SetProjection(bson.M{"deliveryId": 1})
	cursor, err := r.Deliveries.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, proj)
	if err != nil {
		return nil, err
	}
	var deliveries []models.Delivery
	if err := cursor.All(ctx, &deliveries); err != nil {
		return nil, err
	}
	for _, d := range deliveries {
		refs[d.ID] = &models.DeliveryRef{ID: d.ID, DeliveryID: d.DeliveryID}
	}
	return refs, nil
}

// UserRefs resolves user ids to name projections.
func (r *RefResolver) UserRefs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*models.UserRef, error) {
	refs := make(map[primitive.ObjectID]*models.UserRef)
	if len(ids) == 0 {
		return refs, nil
	}
	proj := options.Find().SetProjection(bson.M{
		"username":   1,
		"first_name": 1,
		"last_name":  1,
	})
	cursor, err := r.Users.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, proj)
	if err != nil {
		return nil, err
	}
	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	for _, u := range users {
		refs[u.ID] = &models.UserRef{
			ID:        u.ID,
			Username:  u.Username,
			FirstName: u.FirstName,
			LastName:  u.LastName,
		}
	}
	return refs, nil
}
