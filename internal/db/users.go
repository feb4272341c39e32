package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fleetops/fleet-backoffice/internal/models"
)

// UserStore defines the interface for back-office user operations, the
// persistence side of the authentication collaborator.
type UserStore interface {
	Insert(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Replace(ctx context.Context, id string, user *models.User) error
	UpdateLastLogin(ctx context.Context, id string) error
}

// MongoUserStore implements UserStore for MongoDB.
type MongoUserStore struct {
	Collection *mongo.Collection
}

// Insert persists a new user. Username and email uniqueness is enforced by
// the store's indexes.
func (s *MongoUserStore) Insert(ctx context.Context, user *models.User) error {
	now := time.Now()
	user.ID = primitive.NewObjectID()
	user.IsActive = true
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := s.Collection.InsertOne(ctx, user); err != nil {
		return wrapWriteError(err)
	}
	return nil
}

// GetByID finds a user by their object id.
func (s *MongoUserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	var user models.User
	if err := s.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetByUsername finds a user by their username.
func (s *MongoUserStore) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.Collection.FindOne(ctx, bson.M{"username": username}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetByEmail finds a user by their email.
func (s *MongoUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Replace overwrites a user by id.
func (s *MongoUserStore) Replace(ctx context.Context, id string, user *models.User) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	user.ID = objectID
	user.UpdatedAt = time.Now()

	result, err := s.Collection.ReplaceOne(ctx, bson.M{"_id": objectID}, user)
	if err != nil {
		return wrapWriteError(err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateLastLogin stamps the last successful login time for a user.
func (s *MongoUserStore) UpdateLastLogin(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	now := time.Now()
	_, err = s.Collection.UpdateOne(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"last_login": now, "updated_at": now}},
	)
	return err
}
