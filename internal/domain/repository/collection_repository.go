package repository

import (
	"context"
	"errors"

	"github.com/cinespot/cinespot-api/internal/domain/entity"
)

// ErrDuplicateMovie is returned by Add when the movie is already in
// the user's collection.
var ErrDuplicateMovie = errors.New("movie already in collection")

// CollectionRepository stores each user's saved movies.
type CollectionRepository interface {
	Add(ctx context.Context, item *entity.CollectionItem) error
	ListByUser(ctx context.Context, userID string) ([]entity.CollectionItem, error)
	Remove(ctx context.Context, userID, movieID string) error
}
