package discord

import (
	"fmt"

	"github.com/EstherBlacksmith/blackjack.V.02/internal/types"
	"github.com/bwmarrin/discordgo"
)

// ResponseEmoji maps error codes to appropriate emojis
var ResponseEmoji = map[types.ErrorCode]string{
	types.ErrGameNotFound:     "🔍",
	types.ErrGameAlreadyEnded: "🏁",
	types.ErrInvalidState:     "⚠️",
	types.ErrEmptyDeck:        "🂠",
	types.ErrNotPlayerTurn:    "⏳",
	types.ErrNotCrupierTurn:   "🎩",
	types.ErrPlayerNotFound:   "👤",
	types.ErrPlayerExists:     "👥",
	types.ErrInvalidAction:    "❌",
	types.ErrInvalidCommand:   "⛔",
	types.ErrInvalidArgument:  "❗",
	types.ErrInternalError:    "💥",
	types.ErrNetworkError:     "🌐",
	types.ErrDatabaseError:    "💾",
}

// Response represents a Discord interaction response
type Response struct {
	Content    string
	Embeds     []*discordgo.MessageEmbed
	Components []discordgo.MessageComponent
	Ephemeral  bool
}

// NewResponse creates a new Response
func NewResponse(content string, components []discordgo.MessageComponent) *Response {
	return &Response{
		Content:    content,
		Components: components,
	}
}

// NewEmbedResponse creates a Response carrying a single embed
func NewEmbedResponse(embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) *Response {
	return &Response{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: components,
	}
}

// NewEphemeralResponse creates a new ephemeral Response (only visible to the user)
func NewEphemeralResponse(content string, components []discordgo.MessageComponent) *Response {
	return &Response{
		Content:    content,
		Components: components,
		Ephemeral:  true,
	}
}

// NewErrorResponse creates an ephemeral error Response. Storage and internal
// failures are reported without their cause.
func NewErrorResponse(err error) *Response {
	var gameErr *types.GameError
	if !types.As(err, &gameErr) {
		return NewEphemeralResponse("💥 Something went wrong at the table, try again later.", nil)
	}

	emoji := ResponseEmoji[gameErr.Code]
	if emoji == "" {
		emoji = "❌"
	}
	switch gameErr.Code {
	case types.ErrInternalError, types.ErrDatabaseError, types.ErrNetworkError:
		return NewEphemeralResponse(fmt.Sprintf("%s Something went wrong at the table, try again later.", emoji), nil)
	}
	return NewEphemeralResponse(fmt.Sprintf("%s %s", emoji, gameErr.Message), nil)
}

// SendResponse sends a response to a Discord interaction
func SendResponse(s SessionHandler, i *discordgo.InteractionCreate, r *Response) error {
	return respond(s, i, discordgo.InteractionResponseChannelMessageWithSource, r)
}

// UpdateResponse replaces the message the interaction came from
func UpdateResponse(s SessionHandler, i *discordgo.InteractionCreate, r *Response) error {
	return respond(s, i, discordgo.InteractionResponseUpdateMessage, r)
}

// SendErrorResponse sends an error response
func SendErrorResponse(s SessionHandler, i *discordgo.InteractionCreate, err error) error {
	return SendResponse(s, i, NewErrorResponse(err))
}

// Helper functions

func respond(s SessionHandler, i *discordgo.InteractionCreate, kind discordgo.InteractionResponseType, r *Response) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: kind,
		Data: &discordgo.InteractionResponseData{
			Content:    r.Content,
			Embeds:     r.Embeds,
			Components: r.Components,
			Flags:      getFlags(r.Ephemeral),
		},
	})
}

func getFlags(ephemeral bool) discordgo.MessageFlags {
	if ephemeral {
		return discordgo.MessageFlagsEphemeral
	}
	return 0
}
