package main

import (
	"os"

	"github.com/yigit/unidash/internal/pkg/logger" // Still needed for initial error logging
	"github.com/yigit/unidash/internal/server"
)

// @title UniDash API
// @version 1.0
// @description API for the UniDash academic administration dashboard

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	// NewServer orchestrates LoadConfigAndSetupLogger, SetupStore, BuildDependencies, SetupRouter
	srv, err := server.NewServer()
	if err != nil {
		// Error details are logged within NewServer's setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run the server (this blocks until shutdown signal)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
