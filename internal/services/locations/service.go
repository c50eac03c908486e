package locations

import (
	"context"
	"errors"

	"github.com/floorline/recorder-api/internal/models"
	"gorm.io/gorm"
)

// ErrLocationNotFound is returned when the requested location does not exist
var ErrLocationNotFound = errors.New("location not found")

// service implements the Service interface
type service struct {
	repo Repository
}

// NewService creates a new location service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateLocation(ctx context.Context, location *models.Location) error {
	if location == nil || location.Name == "" {
		return errors.New("location name is required")
	}
	return s.repo.Create(ctx, location)
}

func (s *service) GetLocation(ctx context.Context, id uint) (*models.Location, error) {
	location, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, ErrLocationNotFound
	}
	return location, nil
}

func (s *service) ListLocations(ctx context.Context) ([]models.Location, error) {
	return s.repo.List(ctx)
}

func (s *service) UpdateLocation(ctx context.Context, location *models.Location) error {
	if location == nil || location.ID == 0 {
		return errors.New("location with ID is required")
	}
	return s.repo.Update(ctx, location)
}

func (s *service) DeleteLocation(ctx context.Context, id uint) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrLocationNotFound
	}
	return err
}
