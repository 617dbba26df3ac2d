package main

import (
	"os"

	"github.com/kasule/studentledger/internal/pkg/logger"
	"github.com/kasule/studentledger/internal/server"
)

func main() {
	// NewServer orchestrates config, logger, database and router setup
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
