// Command resetdb drops the ATM tables and recreates them empty.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/deepakbishnoi717/atm/internal/config"
	"github.com/deepakbishnoi717/atm/internal/db"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	database, err := db.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := database.Reset(ctx); err != nil {
		logger.Error("failed to reset database", "error", err)
		os.Exit(1) //nolint:gocritic // deferred close is best effort here
	}

	logger.Info("database reset complete")
}
