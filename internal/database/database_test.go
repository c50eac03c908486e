package database

import (
	"path/filepath"
	"testing"

	"github.com/floorline/recorder-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeCreatesDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "data", "recorder.db")

	db, err := Initialize(dbPath, false)
	require.NoError(t, err)
	defer db.Close()

	assert.NoError(t, db.HealthCheck())
}

func TestAutoMigrate(t *testing.T) {
	db, err := Initialize(":memory:", false)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Location{}, &models.Recording{}))

	// Migrated tables accept writes
	rec := &models.Recording{
		UserID:     1,
		LocationID: 1,
		FileName:   "floor.m4a",
		AudioData:  []byte{0x01},
	}
	require.NoError(t, db.Create(rec).Error)
	assert.NotZero(t, rec.ID)
}

func TestHealthCheckNotInitialized(t *testing.T) {
	var db *DB
	assert.Error(t, db.HealthCheck())
}
