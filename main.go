// Package main is the entry point for the finance and habit tracker.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gitlab.com/aungkh/finhabit/internal/advisor"
	"gitlab.com/aungkh/finhabit/internal/app"
	"gitlab.com/aungkh/finhabit/internal/config"
	"gitlab.com/aungkh/finhabit/internal/database"
	"gitlab.com/aungkh/finhabit/internal/logger"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("finhabit %s (commit: %s, built: %s)\n", version, commit, date)
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to load config")
	}

	logger.SetLevel(cfg.LogLevel)

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pool.Close()

	if err := database.RunMigrations(ctx, pool); err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	logger.Log.Info().Msg("Database initialized successfully")

	service := app.NewService(cfg.UserID, app.NewPostgresStore(pool))
	if loc, err := time.LoadLocation(cfg.PlannedProcessTimezone); err == nil {
		// Day boundaries for habits and due checks follow the user's timezone.
		service.SetClock(func() time.Time { return time.Now().In(loc) })
	}
	if err := service.Load(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to load state")
	}

	if cfg.GeminiAPIKey != "" {
		client, err := advisor.NewClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			logger.Log.Warn().Err(err).Msg("Advisor unavailable, continuing without suggestions")
		} else {
			service.SetAdvisor(client)
		}
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		logger.Log.Info().Msg("Shutting down...")
		cancel()
	}()

	service.StartPlannedProcessingLoop(ctx, cfg.PlannedCheckInterval, cfg.PlannedProcessingOnBoot)
}
