package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/EstherBlacksmith/blackjack.V.02/internal/app"
	"github.com/EstherBlacksmith/blackjack.V.02/internal/config"
	internaldiscord "github.com/EstherBlacksmith/blackjack.V.02/internal/discord"
	"github.com/EstherBlacksmith/blackjack.V.02/internal/logging"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/discord"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.ValidateDiscord(); err != nil {
		log.Fatalf("Invalid Discord configuration: %v", err)
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

	session, err := internaldiscord.NewSession(cfg.Discord.Token)
	if err != nil {
		logger.Error("Error creating Discord session: %v", err)
		return
	}

	bot := discord.NewBot(session, cfg.Discord.AppID, cfg.Discord.GuildID, a.Games, a.Players, a.Stats)
	if err := bot.Start(); err != nil {
		logger.Error("Error starting bot: %v", err)
		return
	}

	logger.Info("Bot is running with %s storage. Press Ctrl+C to exit", cfg.StorageType)
	<-ctx.Done()

	logger.Info("Shutting down...")
	if err := bot.Stop(); err != nil {
		logger.Error("Error stopping bot: %v", err)
	}
}
