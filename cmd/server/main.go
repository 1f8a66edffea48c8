package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/EstherBlacksmith/blackjack.V.02/internal/api"
	"github.com/EstherBlacksmith/blackjack.V.02/internal/app"
	"github.com/EstherBlacksmith/blackjack.V.02/internal/config"
	"github.com/EstherBlacksmith/blackjack.V.02/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	a.Start(ctx)

	logger := logging.Default.With("server")
	logger.Info("Using %s storage", cfg.StorageType)

	server := api.NewServer(a.Games, a.Players, a.Stats)
	if err := server.ListenAndServe(ctx, cfg.HTTPAddr); err != nil {
		logger.Error("Server stopped: %v", err)
	}

	logger.Info("Shutting down...")
	if err := a.Close(); err != nil {
		logger.Error("Error closing storage: %v", err)
	}
}
