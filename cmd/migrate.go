package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/floorline/recorder-api/internal/database"
	"github.com/floorline/recorder-api/internal/models"
	"github.com/floorline/recorder-api/pkg/config"
)

// migrateCmd applies the GORM schema migrations without starting the server
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Apply database schema migrations for the Sales Floor Recorder API.

The schema is managed through GORM auto-migration: running this command
creates or updates the users, locations and recordings tables to match
the current model definitions. It is safe to run repeatedly.`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.AutoMigrate(&models.User{}, &models.Location{}, &models.Recording{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	fmt.Printf("Migrations applied to %s\n", cfg.Database.Path)
	return nil
}
