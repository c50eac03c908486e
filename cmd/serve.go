package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/floorline/recorder-api/api"
	"github.com/floorline/recorder-api/api/types"
	"github.com/floorline/recorder-api/internal/database"
	"github.com/floorline/recorder-api/internal/models"
	"github.com/floorline/recorder-api/internal/services/auth"
	"github.com/floorline/recorder-api/internal/services/locations"
	"github.com/floorline/recorder-api/internal/services/recordings"
	"github.com/floorline/recorder-api/internal/services/syscheck"
	"github.com/floorline/recorder-api/internal/services/transcriber"
	"github.com/floorline/recorder-api/internal/services/users"
	"github.com/floorline/recorder-api/pkg/config"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Sales Floor Recorder API server with the configured settings.

Example:
  recorder-api serve
  recorder-api serve --port 9090
  recorder-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.AutoMigrate(&models.User{}, &models.Location{}, &models.Recording{}); err != nil {
		return fmt.Errorf("failed to auto-migrate database: %w", err)
	}

	deps := buildDependencies(db, cfg)

	server := api.NewServer(fmt.Sprintf("%s:%d", serverHost, serverPort), cfg.Server)
	server.SetDependencies(deps)
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	fmt.Printf("Starting Sales Floor Recorder API server on %s:%d\n", serverHost, serverPort)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case <-stop:
		fmt.Println("\nShutting down server...")
	case err := <-serverErr:
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		fmt.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server forced to shutdown: %v\n", err)
		return err
	}

	fmt.Println("Server gracefully stopped")
	return nil
}

// buildDependencies wires every service behind the HTTP handlers
func buildDependencies(db *database.DB, cfg *config.Config) *types.Dependencies {
	recordingService := recordings.NewService(recordings.NewRepository(db.DB))

	tc := cfg.Transcription
	adapters := []transcriber.Adapter{
		transcriber.NewWhisperAdapter(tc.PythonPath, tc.WhisperTimeout),
		transcriber.NewWhisperXAdapter(tc.PythonPath, tc.WhisperXTimeout),
		transcriber.NewHostedAdapter(tc.OpenAIAPIKey, tc.HostedModel),
	}
	transcriberService := transcriber.NewService(
		recordingService,
		transcriber.NewRunner(tc.TempDir),
		adapters,
		transcriber.Defaults{
			Language: tc.Language,
			Model:    tc.DefaultModel,
			HFToken:  tc.HFToken,
		},
	)

	return &types.Dependencies{
		DB:               db,
		AuthService:      auth.NewService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		UserService:      users.NewService(users.NewRepository(db.DB)),
		LocationService:  locations.NewService(locations.NewRepository(db.DB)),
		RecordingService: recordingService,
		Transcriber:      transcriberService,
		SysChecker:       syscheck.NewChecker(tc.PythonPath, tc.FFmpegPath),
		MaxUploadBytes:   cfg.Upload.MaxBytes,
	}
}
