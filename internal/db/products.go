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

// ProductStore defines the interface for product data operations.
type ProductStore interface {
	List(ctx context.Context, opts ListOptions) ([]models.Product, int64, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Insert(ctx context.Context, product *models.Product) error
	Replace(ctx context.Context, id string, product *models.Product) error
	Delete(ctx context.Context, id string) error
}

// MongoProductStore implements ProductStore for MongoDB.
type MongoProductStore struct {
	Collection *mongo.Collection
}

func productFilter(opts ListOptions) bson.M {
	filter := bson.M{}
	if hasFilter(opts.Category) {
		filter["category"] = opts.Category
	}
	if opts.Active != nil {
		filter["isActive"] = *opts.Active
	}
	if opts.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(opts.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"productId": pattern},
			bson.M{"name": pattern},
		}
	}
	return filter
}

// List returns one page of products, newest-created first, plus the total
// match count.
func (s *MongoProductStore) List(ctx context.Context, opts ListOptions) ([]models.Product, int64, error) {
	filter := productFilter(opts)

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
	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// GetByID finds a product by its object id.
func (s *MongoProductStore) GetByID(ctx context.Context, id string) (*models.Product, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	var product models.Product
	if err := s.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&product); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// Insert persists a new product. The business key is caller-supplied;
// uniqueness is enforced by the store's index.
func (s *MongoProductStore) Insert(ctx context.Context, product *models.Product) error {
	now := time.Now()
	product.ID = primitive.NewObjectID()
	if product.IsActive == nil {
		active := true
		product.IsActive = &active
	}
	product.CreatedAt = now
	product.UpdatedAt = now

	if _, err := s.Collection.InsertOne(ctx, product); err != nil {
		return wrapWriteError(err)
	}
	return nil
}

// Replace overwrites a product by id.
func (s *MongoProductStore) Replace(ctx context.Context, id string, product *models.Product) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	product.ID = objectID
	product.UpdatedAt = time.Now()

	result, err := s.Collection.ReplaceOne(ctx, bson.M{"_id": objectID}, product)
	if err != nil {
		return wrapWriteError(err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a product by id.
func (s *MongoProductStore) Delete(ctx context.Context, id string) error {
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
