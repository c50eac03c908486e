package locations

import (
	"context"

	"github.com/floorline/recorder-api/internal/models"
)

// Service defines the interface for location operations
type Service interface {
	CreateLocation(ctx context.Context, location *models.Location) error
	GetLocation(ctx context.Context, id uint) (*models.Location, error)
	ListLocations(ctx context.Context) ([]models.Location, error)
	UpdateLocation(ctx context.Context, location *models.Location) error
	DeleteLocation(ctx context.Context, id uint) error
}

// Repository defines the interface for location persistence
type Repository interface {
	Create(ctx context.Context, location *models.Location) error
	GetByID(ctx context.Context, id uint) (*models.Location, error)
	List(ctx context.Context) ([]models.Location, error)
	Update(ctx context.Context, location *models.Location) error
	Delete(ctx context.Context, id uint) error
}
