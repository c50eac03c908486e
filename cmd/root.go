package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/floorline/recorder-api/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "recorder-api",
	Short: "Sales Floor Recorder API server",
	Long: `Sales Floor Recorder API - backend for recording and transcribing
sales-floor conversations.

Mobile clients upload audio recordings tied to a sales floor; admins review
them and trigger transcription through local whisper backends or a hosted
speech-to-text API.

Features:
  • Audio upload and storage per sales floor
  • Transcription via faster-whisper, WhisperX (with speaker
    diarization) or a hosted Whisper API
  • Manual transcription correction
  • User and location management with JWT auth`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
}

// loadConfig loads the configuration when a command needs it
func loadConfig() {
	// Version and help don't need config
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
