package locations

import (
	"context"
	"errors"

	"github.com/floorline/recorder-api/internal/models"
	"gorm.io/gorm"
)

// repository implements the Repository interface using GORM
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new location repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, location *models.Location) error {
	if location == nil {
		return errors.New("location cannot be nil")
	}
	return r.db.WithContext(ctx).Create(location).Error
}

func (r *repository) GetByID(ctx context.Context, id uint) (*models.Location, error) {
	var location models.Location
	result := r.db.WithContext(ctx).First(&location, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &location, nil
}

func (r *repository) List(ctx context.Context) ([]models.Location, error) {
	var locations []models.Location
	if err := r.db.WithContext(ctx).Order("name").Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *repository) Update(ctx context.Context, location *models.Location) error {
	if location == nil {
		return errors.New("location cannot be nil")
	}
	return r.db.WithContext(ctx).Save(location).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Location{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
