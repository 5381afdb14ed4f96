package doctor

import (
	"context"
	"errors"
	"time"

	"doctorsportal/models"

	"github.com/google/uuid"
)

// List returns the roster.
func (svc *DefaultDoctorService) List(ctx context.Context) ([]models.Doctor, error) {
	return svc.Repo.List(ctx)
}

// Add assigns an id and stores the doctor.
func (svc *DefaultDoctorService) Add(ctx context.Context, doc models.Doctor) (*models.Doctor, error) {
	if doc.Name == "" || doc.Specialty == "" {
		return nil, errors.New("doctor name and specialty are required")
	}
	doc.ID = uuid.New().String()
	doc.CreatedAt = time.Now()
	if err := svc.Repo.Insert(ctx, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Remove deletes a roster entry by id.
func (svc *DefaultDoctorService) Remove(ctx context.Context, id string) error {
	return svc.Repo.Delete(ctx, id)
}
