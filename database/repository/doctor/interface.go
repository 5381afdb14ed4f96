package doctorRepo

import (
	"context"
	"errors"

	"doctorsportal/models"
)

// ErrNotFound is returned when no doctor matches the requested id.
var ErrNotFound = errors.New("doctor not found")

// DoctorRepository stores the admin-managed doctor roster.
type DoctorRepository interface {
	List(ctx context.Context) ([]models.Doctor, error)
	Insert(ctx context.Context, doctor *models.Doctor) error
	Delete(ctx context.Context, id string) error
}
