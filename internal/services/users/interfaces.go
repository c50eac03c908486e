package users

import (
	"context"

	"github.com/floorline/recorder-api/internal/models"
)

// Service defines the interface for user operations
type Service interface {
	// CreateUser creates a new user with a hashed password
	CreateUser(ctx context.Context, username, password, fullName, role string, locationID *uint) (*models.User, error)

	// Authenticate verifies credentials and returns the user
	Authenticate(ctx context.Context, username, password string) (*models.User, error)

	// GetUser retrieves a user by ID
	GetUser(ctx context.Context, id uint) (*models.User, error)

	// ListUsers returns all users
	ListUsers(ctx context.Context) ([]models.User, error)

	// DeleteUser removes a user
	DeleteUser(ctx context.Context, id uint) error
}

// Repository defines the interface for user persistence
type Repository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Delete(ctx context.Context, id uint) error
}
