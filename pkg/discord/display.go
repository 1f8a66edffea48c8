package discord

import (
	"fmt"
	"strings"

	"github.com/EstherBlacksmith/blackjack.V.02/pkg/entities"
	"github.com/bwmarrin/discordgo"
)

// Button custom ids. Game buttons carry the game id after the colon.
const (
	buttonHit       = "hit"
	buttonStand     = "stand"
	buttonCrupier   = "crupier"
	buttonPlayAgain = "play_again"
)

var suitEmoji = map[entities.Suit]string{
	entities.Hearts:   "♥️",
	entities.Diamonds: "♦️",
	entities.Clubs:    "♣️",
	entities.Spades:   "♠️",
}

func formatCards(cards []entities.Card) string {
	if len(cards) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(cards))
	for _, card := range cards {
		parts = append(parts, formatCard(card))
	}
	return strings.Join(parts, " ")
}

func formatCard(card entities.Card) string {
	return fmt.Sprintf("`%s`%s", card.Rank.Symbol(), suitEmoji[card.Suit])
}

// createGameEmbed shows both hands, the turn and, once finished, the result
func createGameEmbed(game *entities.GameRecord) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "🃏 Blackjack",
		Color: 0x2E8B57,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Crupier",
				Value:  fmt.Sprintf("%s\nScore: %d", formatCards(game.DealerCards), game.DealerScore),
				Inline: true,
			},
			{
				Name:   game.PlayerName,
				Value:  fmt.Sprintf("%s\nScore: %d", formatCards(game.PlayerCards), game.PlayerScore),
				Inline: true,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Game " + game.ID},
	}

	switch game.Status {
	case entities.StatusPlayerTurn:
		embed.Description = "👉 Your turn: hit or stand?"
	case entities.StatusCrupierTurn:
		embed.Description = "🎩 The crupier plays. Press Dealer step to draw."
	case entities.StatusFinished:
		embed.Description = resultMessage(game)
		embed.Color = resultColor(game.Result)
	}
	return embed
}

// createGameComponents returns the buttons valid for the game's status
func createGameComponents(game *entities.GameRecord) []discordgo.MessageComponent {
	var buttons []discordgo.MessageComponent
	switch game.Status {
	case entities.StatusPlayerTurn:
		buttons = []discordgo.MessageComponent{
			discordgo.Button{Label: "Hit", Style: discordgo.PrimaryButton, CustomID: buttonHit + ":" + game.ID},
			discordgo.Button{Label: "Stand", Style: discordgo.SecondaryButton, CustomID: buttonStand + ":" + game.ID},
		}
	case entities.StatusCrupierTurn:
		buttons = []discordgo.MessageComponent{
			discordgo.Button{Label: "Dealer step", Style: discordgo.PrimaryButton, CustomID: buttonCrupier + ":" + game.ID},
		}
	case entities.StatusFinished:
		buttons = []discordgo.MessageComponent{
			discordgo.Button{Label: "Play again", Style: discordgo.SuccessButton, CustomID: buttonPlayAgain},
		}
	default:
		return nil
	}
	return []discordgo.MessageComponent{discordgo.ActionsRow{Components: buttons}}
}

func resultColor(result entities.GameResult) int {
	switch result {
	case entities.ResultBlackjack:
		return 0xFFD700
	case entities.ResultPlayerWins:
		return 0x00FF00
	case entities.ResultPush:
		return 0xAAAAAA
	default:
		return 0xFF0000
	}
}
