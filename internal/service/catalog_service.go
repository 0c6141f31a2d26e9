package service

import (
	"database/sql"
	"errors"
	"fmt"

	"nailstudio/internal/db"
	"nailstudio/internal/repository"
)

// ErrServiceInUse is returned when a delete would orphan non-cancelled
// appointments that reference the service.
var ErrServiceInUse = errors.New("service is referenced by active appointments")

type CatalogService struct {
	Repo *repository.ServiceRepository
}

func NewCatalogService(repo *repository.ServiceRepository) *CatalogService {
	return &CatalogService{Repo: repo}
}

func (s *CatalogService) ListServices(category string) ([]db.Service, error) {
	return s.Repo.ListServices(category)
}

func (s *CatalogService) GetServiceByID(id int) (*db.Service, error) {
	return s.Repo.GetServiceByID(id)
}

func (s *CatalogService) CreateService(name, description, imageURL, category string, price float64, duration int) (*db.Service, error) {
	if name == "" || duration == 0 {
		return nil, fmt.Errorf("%w: name and duration are required", ErrInvalidRequest)
	}
	if price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrInvalidRequest)
	}
	if duration < 0 {
		return nil, fmt.Errorf("%w: duration cannot be negative", ErrInvalidRequest)
	}

	svc := &db.Service{
		Name:        name,
		Description: sql.NullString{String: description, Valid: description != ""},
		Price:       price,
		Duration:    duration,
		ImageURL:    sql.NullString{String: imageURL, Valid: imageURL != ""},
		Category:    sql.NullString{String: category, Valid: category != ""},
	}
	if err := s.Repo.CreateService(svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *CatalogService) UpdateService(id int, name, description, imageURL, category *string, price *float64, duration *int) error {
	if price != nil && *price < 0 {
		return fmt.Errorf("%w: price cannot be negative", ErrInvalidRequest)
	}
	if duration != nil && *duration < 0 {
		return fmt.Errorf("%w: duration cannot be negative", ErrInvalidRequest)
	}
	return s.Repo.UpdateService(id, name, description, imageURL, category, price, duration)
}

// DeleteServices removes services by id, refusing when any of them is still
// referenced by a non-cancelled appointment.
func (s *CatalogService) DeleteServices(ids []int) error {
	if len(ids) == 0 {
		return fmt.Errorf("%w: no service ids given", ErrInvalidRequest)
	}
	inUse, err := s.Repo.CountActiveAppointmentsForServices(ids)
	if err != nil {
		return err
	}
	if inUse > 0 {
		return fmt.Errorf("%d appointments: %w", inUse, ErrServiceInUse)
	}
	return s.Repo.DeleteServices(ids)
}
