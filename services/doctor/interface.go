package doctor

import (
	"context"

	doctorRepo "doctorsportal/database/repository/doctor"
	"doctorsportal/models"
)

// Service manages the admin-gated doctor roster.
type Service interface {
	List(ctx context.Context) ([]models.Doctor, error)
	Add(ctx context.Context, doc models.Doctor) (*models.Doctor, error)
	Remove(ctx context.Context, id string) error
}

// DefaultDoctorService implements Service.
type DefaultDoctorService struct {
	Repo doctorRepo.DoctorRepository
}
