package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/floorline/recorder-api/internal/database"
	"github.com/floorline/recorder-api/internal/models"
	"github.com/floorline/recorder-api/internal/services/users"
	"github.com/floorline/recorder-api/pkg/config"
)

var (
	userAddRole     string
	userAddFullName string
)

// userAddCmd creates an account from the command line. The first admin has to
// come from somewhere before the HTTP user management routes are reachable.
var userAddCmd = &cobra.Command{
	Use:   "useradd <username> <password>",
	Short: "Create a user account",
	Long: `Create a user account directly in the database.

Use this to bootstrap the first admin account:
  recorder-api useradd boss secret123 --role admin`,
	Args: cobra.ExactArgs(2),
	RunE: runUserAdd,
}

func init() {
	rootCmd.AddCommand(userAddCmd)

	userAddCmd.Flags().StringVar(&userAddRole, "role", "seller", "account role (seller or admin)")
	userAddCmd.Flags().StringVar(&userAddFullName, "full-name", "", "display name")
}

func runUserAdd(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.AutoMigrate(&models.User{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	service := users.NewService(users.NewRepository(db.DB))
	user, err := service.CreateUser(cmd.Context(), args[0], args[1], userAddFullName, userAddRole, nil)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	fmt.Printf("Created %s user %q (id %d)\n", user.Role, user.Username, user.ID)
	return nil
}
