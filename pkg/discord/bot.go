package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/EstherBlacksmith/blackjack.V.02/internal/discord"
	"github.com/EstherBlacksmith/blackjack.V.02/internal/logging"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/discord/commands"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/services/game"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/services/player"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/services/statistics"
	"github.com/bwmarrin/discordgo"
)

// requestTimeout bounds the work done for one interaction. Discord drops
// interactions that are not answered within three seconds.
const requestTimeout = 3 * time.Second

// Bot represents the Discord bot instance
type Bot struct {
	session discord.SessionHandler
	appID   string
	guildID string

	games   game.GameService
	players player.PlayerService
	stats   *commands.StatsCommand

	removeHandlers []func()
	logger         *logging.Logger
}

// NewBot creates a new instance of the bot. An empty guildID registers the
// commands globally.
func NewBot(session discord.SessionHandler, appID, guildID string, games game.GameService, players player.PlayerService, stats statistics.StatisticsService) *Bot {
	return &Bot{
		session: session,
		appID:   appID,
		guildID: guildID,
		games:   games,
		players: players,
		stats:   commands.NewStatsCommand(stats),
		logger:  logging.Default.With("discord"),
	}
}

// WithLogger sets the bot logger
func (b *Bot) WithLogger(logger *logging.Logger) *Bot {
	b.logger = logger
	return b
}

// Commands returns the slash commands the bot registers
func (b *Bot) Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "blackjack",
			Description: "Deal a new game of blackjack against the crupier",
		},
		b.stats.StatsDefinition(),
		b.stats.RankingDefinition(),
	}
}

// Start connects to Discord and registers the slash commands
func (b *Bot) Start() error {
	b.removeHandlers = append(b.removeHandlers,
		b.session.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
			b.logger.Info("Bot is ready: %s", r.User.Username)
		}),
		b.session.AddHandler(func(_ *discordgo.Session, i *discordgo.InteractionCreate) {
			b.handleInteraction(i)
		}),
	)

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	for _, cmd := range b.Commands() {
		if _, err := b.session.ApplicationCommandCreate(b.appID, b.guildID, cmd); err != nil {
			return fmt.Errorf("error creating command %s: %w", cmd.Name, err)
		}
		b.logger.Info("Registered command /%s", cmd.Name)
	}
	return nil
}

// Stop removes the commands registered for a guild and closes the connection
func (b *Bot) Stop() error {
	for _, remove := range b.removeHandlers {
		remove()
	}
	b.removeHandlers = nil

	if b.guildID != "" {
		registered, err := b.session.ApplicationCommands(b.appID, b.guildID)
		if err != nil {
			b.logger.Warn("Could not list commands: %v", err)
		}
		for _, cmd := range registered {
			if err := b.session.ApplicationCommandDelete(b.appID, b.guildID, cmd.ID); err != nil {
				b.logger.Warn("Could not delete command /%s: %v", cmd.Name, err)
			}
		}
	}

	if err := b.session.Close(); err != nil {
		return fmt.Errorf("error closing connection: %w", err)
	}
	return nil
}

func (b *Bot) newContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}
