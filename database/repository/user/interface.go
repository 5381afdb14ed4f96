package userRepo

import (
	"context"
	"errors"

	"doctorsportal/models"
)

var (
	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("user not found")
	// ErrEmailTaken fires when the unique email index rejects an insert.
	ErrEmailTaken = errors.New("email already registered")
)

// UserRepository stores accounts. The booking core only consumes the role
// lookup (admin gating) and the email lookup (token issuance).
type UserRepository interface {
	Insert(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	SetRole(ctx context.Context, id, role string) error
	EnsureIndexes() error
}
