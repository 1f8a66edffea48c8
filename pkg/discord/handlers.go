package discord

import (
	"context"
	"strings"

	"github.com/EstherBlacksmith/blackjack.V.02/internal/discord"
	"github.com/EstherBlacksmith/blackjack.V.02/internal/types"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/entities"
	"github.com/bwmarrin/discordgo"
)

func (b *Bot) handleInteraction(i *discordgo.InteractionCreate) {
	ctx, cancel := b.newContext()
	defer cancel()

	var err error
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		err = b.handleCommand(ctx, i)
	case discordgo.InteractionMessageComponent:
		err = b.handleComponent(ctx, i)
	default:
		return
	}
	if err != nil {
		b.logger.Error("Error answering interaction %s: %v", i.ID, err)
	}
}

func (b *Bot) handleCommand(ctx context.Context, i *discordgo.InteractionCreate) error {
	name := i.ApplicationCommandData().Name
	b.logger.Debug("Received command /%s", name)

	switch name {
	case "blackjack":
		return b.handleBlackjackCommand(ctx, i)
	case "stats":
		p, err := b.login(ctx, i)
		if err != nil {
			return discord.SendErrorResponse(b.session, i, err)
		}
		return b.stats.HandleStats(ctx, b.session, i, p.ID)
	case "ranking":
		return b.stats.HandleRanking(ctx, b.session, i)
	default:
		return discord.SendErrorResponse(b.session, i, types.NewGameError(types.ErrInvalidCommand, "unknown command /"+name))
	}
}

func (b *Bot) handleComponent(ctx context.Context, i *discordgo.InteractionCreate) error {
	if handled, err := b.stats.HandleComponent(ctx, b.session, i); handled {
		return err
	}

	action, gameID, _ := strings.Cut(i.MessageComponentData().CustomID, ":")
	switch action {
	case buttonPlayAgain:
		return b.handleBlackjackCommand(ctx, i)
	case buttonHit:
		return b.handleGameAction(ctx, i, gameID, b.games.Hit)
	case buttonStand:
		return b.handleGameAction(ctx, i, gameID, b.games.Stand)
	case buttonCrupier:
		return b.handleGameAction(ctx, i, gameID, b.games.CrupierHit)
	default:
		b.logger.Warn("Unknown component ID: %s", i.MessageComponentData().CustomID)
		return discord.SendErrorResponse(b.session, i, types.NewGameError(types.ErrInvalidCommand, "I don't understand that button"))
	}
}

// handleBlackjackCommand deals a new game for the user who asked
func (b *Bot) handleBlackjackCommand(ctx context.Context, i *discordgo.InteractionCreate) error {
	p, err := b.login(ctx, i)
	if err != nil {
		return discord.SendErrorResponse(b.session, i, err)
	}

	game, err := b.games.NewGame(ctx, p.ID)
	if err != nil {
		return discord.SendErrorResponse(b.session, i, err)
	}
	return discord.SendResponse(b.session, i, gameResponse(game))
}

// handleGameAction applies a button press to the game it belongs to. Only the
// player who owns the game may press its buttons.
func (b *Bot) handleGameAction(ctx context.Context, i *discordgo.InteractionCreate, gameID string, action func(context.Context, string) (*entities.GameRecord, error)) error {
	p, err := b.login(ctx, i)
	if err != nil {
		return discord.SendErrorResponse(b.session, i, err)
	}

	current, err := b.games.GetGame(ctx, gameID)
	if err != nil {
		return discord.SendErrorResponse(b.session, i, err)
	}
	if current.PlayerID != p.ID {
		return discord.SendErrorResponse(b.session, i, types.NewGameError(types.ErrInvalidAction, "this is not your game, start your own with /blackjack"))
	}

	game, err := action(ctx, gameID)
	if err != nil {
		return discord.SendErrorResponse(b.session, i, err)
	}
	return discord.UpdateResponse(b.session, i, gameResponse(game))
}

// login maps the Discord user to a player, creating the player on first use
func (b *Bot) login(ctx context.Context, i *discordgo.InteractionCreate) (*entities.Player, error) {
	user := interactionUser(i)
	if user == nil {
		return nil, types.NewGameError(types.ErrInvalidArgument, "could not tell who you are")
	}
	p, created, err := b.players.Login(ctx, user.Username)
	if err != nil {
		return nil, err
	}
	if created {
		b.logger.Info("Registered player %s for Discord user %s", p.Name, user.ID)
	}
	return p, nil
}

func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

func gameResponse(game *entities.GameRecord) *discord.Response {
	return discord.NewEmbedResponse(createGameEmbed(game), createGameComponents(game))
}
