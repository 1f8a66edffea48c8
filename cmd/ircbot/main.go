package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/EstherBlacksmith/blackjack.V.02/internal/app"
	"github.com/EstherBlacksmith/blackjack.V.02/internal/config"
	"github.com/EstherBlacksmith/blackjack.V.02/internal/logging"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/irc"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.ValidateIRC(); err != nil {
		log.Fatalf("Invalid IRC configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer a.Close()
	a.Start(ctx)

	logger := logging.Default.With("main")

	bot := irc.NewBot(irc.Config{
		Server:  cfg.IRC.Server,
		Nick:    cfg.IRC.Nick,
		Channel: cfg.IRC.Channel,
		UseTLS:  cfg.IRC.UseTLS,
	})
	handler := irc.NewHandler(bot.Sender(), a.Games, a.Players, a.Stats)

	logger.Info("Connecting to %s as %s", cfg.IRC.Server, cfg.IRC.Nick)
	if err := bot.Run(ctx, handler); err != nil {
		logger.Error("IRC bot stopped: %v", err)
	}
}
