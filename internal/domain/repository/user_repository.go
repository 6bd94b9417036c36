package repository

import (
	"context"
	"errors"

	"github.com/cinespot/cinespot-api/internal/domain/entity"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// ErrDuplicateEmail is returned by Create when the email unique
// constraint rejects the insert.
var ErrDuplicateEmail = errors.New("email already registered")

// UserRepository is the account store adapter: users keyed by id and
// by unique email.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
}
