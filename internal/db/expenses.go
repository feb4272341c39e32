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

// ExpenseStore defines the interface for expense data operations.
type ExpenseStore interface {
	List(ctx context.Context, opts ListOptions) ([]models.Expense, int64, error)
	GetByID(ctx context.Context, id string) (*models.Expense, error)
	Insert(ctx context.Context, expense *models.Expense) error
	Replace(ctx context.Context, id string, expense *models.Expense) error
	Delete(ctx context.Context, id string) error
}

// MongoExpenseStore implements ExpenseStore for MongoDB.
type MongoExpenseStore struct {
	Collection *mongo.Collection
	Refs       *RefResolver
}

// expenseFilter translates list options into a store query. The date range
// is inclusive on both ends and only applies when both bounds are present.
func expenseFilter(opts ListOptions) bson.M {
	filter := bson.M{}
	if hasFilter(opts.Type) && models.IsValidExpenseType(models.ExpenseType(opts.Type)) {
		filter["type"] = opts.Type
	}
	if hasFilter(opts.Category) && models.IsValidExpenseCategory(models.ExpenseCategory(opts.Category)) {
		filter["category"] = opts.Category
	}
	if hasFilter(opts.Status) && models.IsValidApprovalStatus(models.ApprovalStatus(opts.Status)) {
		filter["status"] = opts.Status
	}
	if opts.hasDateRange() {
		filter["date"] = bson.M{
			"$gte": *opts.StartDate,
			"$lte": *opts.EndDate,
		}
	}
	return filter
}

// List returns one page of expenses, newest expense date first, with all
// references expanded, plus the total match count.
func (s *MongoExpenseStore) List(ctx context.Context, opts ListOptions) ([]models.Expense, int64, error) {
	filter := expenseFilter(opts)

	total, err := s.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetSkip(opts.skip()).
		SetLimit(int64(opts.limit()))
	cursor, err := s.Collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	expenses := []models.Expense{}
	if err := cursor.All(ctx, &expenses); err != nil {
		return nil, 0, err
	}

	if err := s.expand(ctx, expenses); err != nil {
		return nil, 0, err
	}
	return expenses, total, nil
}

// GetByID finds an expense by its object id with references expanded.
func (s *MongoExpenseStore) GetByID(ctx context.Context, id string) (*models.Expense, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	var expense models.Expense
	if err := s.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&expense); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	one := []models.Expense{expense}
	if err := s.expand(ctx, one); err != nil {
		return nil, err
	}
	return &one[0], nil
}

// Insert persists a new expense.
func (s *MongoExpenseStore) Insert(ctx context.Context, expense *models.Expense) error {
	now := time.Now()
	expense.ID = primitive.NewObjectID()
	if expense.Status == "" {
		expense.Status = models.ApprovalPending
	}
	if expense.PaymentMethod == "" {
		expense.PaymentMethod = "company-card"
	}
	expense.CreatedAt = now
	expense.UpdatedAt = now

	if _, err := s.Collection.InsertOne(ctx, expense); err != nil {
		return wrapWriteError(err)
	}

	one := []models.Expense{*expense}
	if err := s.expand(ctx, one); err != nil {
		return err
	}
	*expense = one[0]
	return nil
}

// Replace overwrites an expense by id.
func (s *MongoExpenseStore) Replace(ctx context.Context, id string, expense *models.Expense) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	expense.ID = objectID
	expense.UpdatedAt = time.Now()

	result, err := s.Collection.ReplaceOne(ctx, bson.M{"_id": objectID}, expense)
	if err != nil {
		return wrapWriteError(err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	one := []models.Expense{*expense}
	if err := s.expand(ctx, one); err != nil {
		return err
	}
	*expense = one[0]
	return nil
}

// Delete removes an expense by id.
func (s *MongoExpenseStore) Delete(ctx context.Context, id string) error {
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

func (s *MongoExpenseStore) expand(ctx context.Context, expenses []models.Expense) error {
	var vehicleIDs, driverIDs, deliveryIDs, userIDs []primitive.ObjectID
	for _, e := range expenses {
		if e.Vehicle != nil {
			vehicleIDs = append(vehicleIDs, *e.Vehicle)
		}
		if e.Driver != nil {
			driverIDs = append(driverIDs, *e.Driver)
		}
		if e.Delivery != nil {
			deliveryIDs = append(deliveryIDs, *e.Delivery)
		}
		if e.ApprovedBy != nil {
			userIDs = append(userIDs, *e.ApprovedBy)
		}
	}

	vehicleRefs, err := s.Refs.VehicleRefs(ctx, vehicleIDs)
	if err != nil {
		return err
	}
	driverRefs, err := s.Refs.DriverRefs(ctx, driverIDs)
	if err != nil {
		return err
	}
	deliveryRefs, err := s.Refs.DeliveryRefs(ctx, deliveryIDs)
	if err != nil {
		return err
	}
	userRefs, err := s.Refs.UserRefs(ctx, userIDs)
	if err != nil {
		return err
	}

	for i := range expenses {
		e := &expenses[i]
		if e.Vehicle != nil {
			e.VehicleInfo = vehicleRefs[*e.Vehicle]
		}
		if e.Driver != nil {
			e.DriverInfo = driverRefs[*e.Driver]
		}
		if e.Delivery != nil {
			e.DeliveryInfo = deliveryRefs[*e.Delivery]
		}
		if e.ApprovedBy != nil {
			e.ApprovedByInfo = userRefs[*e.ApprovedBy]
		}
	}
	return nil
}
