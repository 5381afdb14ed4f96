package user

import (
	"context"
	"errors"
	"time"

	userRepo "doctorsportal/database/repository/user"
	"doctorsportal/models"
	"doctorsportal/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 2 * time.Hour

// ErrInvalidCredentials is returned when the email is unknown or the
// password does not match.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Register creates an account with a bcrypt-hashed password.
func (svc *DefaultUserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, errors.New("email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := svc.Repo.Insert(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// IssueToken verifies the credentials and returns a signed access token.
// Unknown emails and bad passwords are indistinguishable to the caller.
func (svc *DefaultUserService) IssueToken(ctx context.Context, email, password string) (string, error) {
	u, err := svc.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}
	return utils.GenerateToken(u.ID, u.Email, tokenDuration)
}

// List returns all accounts.
func (svc *DefaultUserService) List(ctx context.Context) ([]models.User, error) {
	return svc.Repo.List(ctx)
}

// IsAdmin reports whether the account with the given email holds the admin
// role. Unknown emails are simply not admins.
func (svc *DefaultUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	u, err := svc.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return u.Role == models.RoleAdmin, nil
}

// PromoteToAdmin grants the admin role to an account by id.
func (svc *DefaultUserService) PromoteToAdmin(ctx context.Context, id string) error {
	return svc.Repo.SetRole(ctx, id, models.RoleAdmin)
}
