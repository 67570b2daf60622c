package main

import (
	"os"

	"github.com/yigit/collegeez/internal/pkg/logger"
	"github.com/yigit/collegeez/internal/server"
)

// @title CollegeEZ API
// @version 1.0
// @description College, review and student data for the CollegeEZ frontend

// @host localhost:5000
// @BasePath /
// @schemes http https

func main() {
	// NewServer orchestrates config, logger, database, dependencies and router
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until shutdown
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
