package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floorline/recorder-api/internal/models"
)

func testUser(id uint, role string) *models.User {
	user := &models.User{Username: "vera", Role: role}
	user.ID = id
	return user
}

func TestTokenRoundTrip(t *testing.T) {
	service := NewService("test-secret", time.Hour)

	token, err := service.IssueToken(testUser(42, "admin"))
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "vera", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.True(t, claims.IsAdmin())
}

func TestSellerClaimsAreNotAdmin(t *testing.T) {
	service := NewService("test-secret", time.Hour)

	token, err := service.IssueToken(testUser(7, "seller"))
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.False(t, claims.IsAdmin())
}

func TestExpiredTokenIsRejected(t *testing.T) {
	// A negative TTL would be replaced by the default, so build the service
	// directly with one.
	service := &Service{secret: []byte("test-secret"), ttl: -time.Hour}

	token, err := service.IssueToken(testUser(1, "seller"))
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenSignedWithDifferentSecretIsRejected(t *testing.T) {
	issuer := NewService("secret-a", time.Hour)
	validator := NewService("secret-b", time.Hour)

	token, err := issuer.IssueToken(testUser(1, "seller"))
	require.NoError(t, err)

	_, err = validator.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGarbageTokenIsRejected(t *testing.T) {
	service := NewService("test-secret", time.Hour)

	_, err := service.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssueTokenNilUser(t *testing.T) {
	service := NewService("test-secret", time.Hour)

	_, err := service.IssueToken(nil)
	assert.Error(t, err)
}
