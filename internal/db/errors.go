package db

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound is returned when no entity matches the given id.
	ErrNotFound = errors.New("not found")
	// ErrInvalidID is returned when an id is not a valid object id.
	ErrInvalidID = errors.New("invalid id")
	// ErrDuplicate is returned when an insert or update collides with a
	// unique index (business key, VIN, plate, email, license number).
	ErrDuplicate = errors.New("duplicate key")
)

// wrapWriteError maps the store's constraint rejections onto the package
// sentinels so handlers never inspect driver errors directly.
func wrapWriteError(err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
