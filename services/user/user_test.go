package user

import (
	"context"
	"testing"

	"doctorsportal/config"
	userRepo "doctorsportal/database/repository/user"
	"doctorsportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	byEmail map[string]*models.User
	byID    map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*models.User),
		byID:    make(map[string]*models.User),
	}
}

func (f *fakeUserRepo) Insert(ctx context.Context, u *models.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return userRepo.ErrEmailTaken
	}
	cp := *u
	f.byEmail[u.Email] = &cp
	f.byID[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, userRepo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]models.User, error) {
	var out []models.User
	for _, u := range f.byEmail {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) SetRole(ctx context.Context, id, role string) error {
	u, ok := f.byID[id]
	if !ok {
		return userRepo.ErrNotFound
	}
	u.Role = role
	return nil
}

func (f *fakeUserRepo) EnsureIndexes() error { return nil }

func TestRegisterAndIssueToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	svc := &DefaultUserService{Repo: newFakeUserRepo()}
	ctx := context.Background()

	u, err := svc.Register(ctx, "Alice", "a@x.com", "hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
	assert.NotEqual(t, "hunter2", u.PasswordHash)

	token, err := svc.IssueToken(ctx, "a@x.com", "hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = svc.IssueToken(ctx, "a@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.IssueToken(ctx, "ghost@x.com", "hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}
	ctx := context.Background()

	_, err := svc.Register(ctx, "Alice", "a@x.com", "hunter2")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Alice again", "a@x.com", "hunter2")
	assert.ErrorIs(t, err, userRepo.ErrEmailTaken)
}

func TestIsAdminAndPromote(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}
	ctx := context.Background()

	u, err := svc.Register(ctx, "Alice", "a@x.com", "hunter2")
	require.NoError(t, err)

	isAdmin, err := svc.IsAdmin(ctx, "a@x.com")
	require.NoError(t, err)
	assert.False(t, isAdmin)

	// Unknown emails are simply not admins, not errors.
	isAdmin, err = svc.IsAdmin(ctx, "ghost@x.com")
	require.NoError(t, err)
	assert.False(t, isAdmin)

	require.NoError(t, svc.PromoteToAdmin(ctx, u.ID))
	isAdmin, err = svc.IsAdmin(ctx, "a@x.com")
	require.NoError(t, err)
	assert.True(t, isAdmin)

	assert.ErrorIs(t, svc.PromoteToAdmin(ctx, "missing"), userRepo.ErrNotFound)
}
