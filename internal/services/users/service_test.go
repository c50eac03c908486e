package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floorline/recorder-api/internal/database"
	"github.com/floorline/recorder-api/internal/models"
)

func setupService(t *testing.T) Service {
	t.Helper()

	db, err := database.Initialize(":memory:", false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.AutoMigrate(&models.User{}))

	return NewService(NewRepository(db.DB))
}

func TestCreateUserHashesPassword(t *testing.T) {
	service := setupService(t)

	user, err := service.CreateUser(context.Background(), "anna", "secret123", "Anna K", "", nil)
	require.NoError(t, err)

	assert.Equal(t, "anna", user.Username)
	assert.Equal(t, "seller", user.Role)
	assert.True(t, user.IsActive)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "secret123", user.PasswordHash)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	_, err := service.CreateUser(ctx, "anna", "secret123", "", "", nil)
	require.NoError(t, err)

	_, err = service.CreateUser(ctx, "anna", "other456", "", "", nil)
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestCreateUserRequiresCredentials(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	_, err := service.CreateUser(ctx, "", "secret", "", "", nil)
	assert.Error(t, err)

	_, err = service.CreateUser(ctx, "anna", "", "", "", nil)
	assert.Error(t, err)
}

func TestAuthenticate(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	created, err := service.CreateUser(ctx, "boss", "secret123", "", "admin", nil)
	require.NoError(t, err)

	user, err := service.Authenticate(ctx, "boss", "secret123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.True(t, user.IsAdmin())

	_, err = service.Authenticate(ctx, "boss", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = service.Authenticate(ctx, "nobody", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetAndDeleteUser(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	created, err := service.CreateUser(ctx, "anna", "secret123", "", "", nil)
	require.NoError(t, err)

	fetched, err := service.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "anna", fetched.Username)

	all, err := service.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, service.DeleteUser(ctx, created.ID))

	_, err = service.GetUser(ctx, created.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	err = service.DeleteUser(ctx, created.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
