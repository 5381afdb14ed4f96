package user

import (
	"context"

	userRepo "doctorsportal/database/repository/user"
	"doctorsportal/models"
)

// Service manages accounts and issues the bearer tokens the booking routes
// trust for identity.
type Service interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	IssueToken(ctx context.Context, email, password string) (string, error)
	List(ctx context.Context) ([]models.User, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	PromoteToAdmin(ctx context.Context, id string) error
}

// DefaultUserService implements Service.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
