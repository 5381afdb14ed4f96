package treatmentRepo

import (
	"context"

	"doctorsportal/models"
)

// TreatmentRepository exposes the slot catalog. The catalog is read-only from
// the booking core's perspective; Seed exists for administrative seeding only.
type TreatmentRepository interface {
	List(ctx context.Context) ([]models.TreatmentOption, error)
	GetByName(ctx context.Context, name string) (*models.TreatmentOption, error)
	ListNames(ctx context.Context) ([]models.TreatmentName, error)
	Seed(ctx context.Context, options []models.TreatmentOption) error
	EnsureIndexes() error
}
