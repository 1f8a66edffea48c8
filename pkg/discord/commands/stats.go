package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/EstherBlacksmith/blackjack.V.02/internal/discord"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/entities"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/services/statistics"
	"github.com/bwmarrin/discordgo"
)

const (
	rankingPerPage = 10

	// RankingPagePrefix starts the custom id of the ranking page buttons
	RankingPagePrefix = "ranking_page:"
)

// StatsCommand handles the /stats and /ranking commands
type StatsCommand struct {
	stats statistics.StatisticsService
}

// NewStatsCommand creates a new stats command handler
func NewStatsCommand(stats statistics.StatisticsService) *StatsCommand {
	return &StatsCommand{stats: stats}
}

// StatsDefinition returns the /stats command
func (c *StatsCommand) StatsDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "stats",
		Description: "Show your blackjack record and recent games",
	}
}

// RankingDefinition returns the /ranking command
func (c *StatsCommand) RankingDefinition() *discordgo.ApplicationCommand {
	minPage := 1.0
	return &discordgo.ApplicationCommand{
		Name:        "ranking",
		Description: "Show the blackjack leaderboard",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "page",
				Description: "Leaderboard page",
				Type:        discordgo.ApplicationCommandOptionInteger,
				MinValue:    &minPage,
			},
		},
	}
}

// HandleStats answers /stats for an already resolved player
func (c *StatsCommand) HandleStats(ctx context.Context, s discord.SessionHandler, i *discordgo.InteractionCreate, playerID string) error {
	stats, err := c.stats.GetPlayerStats(ctx, playerID)
	if err != nil {
		return discord.SendErrorResponse(s, i, err)
	}
	resp := discord.NewEmbedResponse(createStatsEmbed(stats), nil)
	resp.Ephemeral = true
	return discord.SendResponse(s, i, resp)
}

// HandleRanking answers /ranking
func (c *StatsCommand) HandleRanking(ctx context.Context, s discord.SessionHandler, i *discordgo.InteractionCreate) error {
	page := 1
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "page" {
			page = int(opt.IntValue())
		}
	}

	board, err := c.stats.GetRanking(ctx, page, rankingPerPage)
	if err != nil {
		return discord.SendErrorResponse(s, i, err)
	}
	return discord.SendResponse(s, i, discord.NewEmbedResponse(createLeaderboardEmbed(board), paginationComponents(board)))
}

// HandleComponent handles the leaderboard page buttons. It reports whether
// the custom id belonged to the leaderboard.
func (c *StatsCommand) HandleComponent(ctx context.Context, s discord.SessionHandler, i *discordgo.InteractionCreate) (bool, error) {
	customID := i.MessageComponentData().CustomID
	if !strings.HasPrefix(customID, RankingPagePrefix) {
		return false, nil
	}

	page, err := strconv.Atoi(strings.TrimPrefix(customID, RankingPagePrefix))
	if err != nil {
		page = 1
	}

	board, err := c.stats.GetRanking(ctx, page, rankingPerPage)
	if err != nil {
		return true, discord.SendErrorResponse(s, i, err)
	}
	return true, discord.UpdateResponse(s, i, discord.NewEmbedResponse(createLeaderboardEmbed(board), paginationComponents(board)))
}

func createStatsEmbed(stats *entities.PlayerStatistics) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("📊 %s", stats.PlayerName),
		Color: 0x3498DB,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Games", Value: strconv.Itoa(stats.TotalGames), Inline: true},
			{Name: "Record", Value: fmt.Sprintf("%dW-%dL-%dP", stats.Wins, stats.Losses, stats.Pushes), Inline: true},
			{Name: "Win Rate", Value: fmt.Sprintf("%.1f%%", stats.WinRate), Inline: true},
		},
	}

	if len(stats.RecentGames) == 0 {
		embed.Description = "No finished games yet. Try /blackjack!"
		return embed
	}

	lines := make([]string, 0, len(stats.RecentGames))
	for _, g := range stats.RecentGames {
		lines = append(lines, fmt.Sprintf("%s **%s** %d vs %d <t:%d:R>",
			resultEmoji(g.Result), g.Result, g.PlayerScore, g.DealerScore, g.PlayedAt.Unix()))
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  "Recent games",
		Value: strings.Join(lines, "\n"),
	})
	return embed
}

// createLeaderboardEmbed creates an embed for the leaderboard
func createLeaderboardEmbed(board *statistics.Leaderboard) *discordgo.MessageEmbed {
	description := fmt.Sprintf("Showing page %d of %d (%d total players)",
		board.CurrentPage, max(board.TotalPages, 1), board.TotalPlayers)

	fields := make([]*discordgo.MessageEmbedField, 0, len(board.Players))
	for _, player := range board.Players {
		var rankEmoji string
		switch player.Rank {
		case 1:
			rankEmoji = "👑 "
		case 2:
			rankEmoji = "🥈 "
		case 3:
			rankEmoji = "🥉 "
		default:
			rankEmoji = fmt.Sprintf("%d. ", player.Rank)
		}

		name := rankEmoji + player.PlayerName
		if player.IsTopPlayer {
			name += " 🏆"
		}

		fields = append(fields, &discordgo.MessageEmbedField{
			Name: name,
			Value: fmt.Sprintf("**Games:** %d | **Record:** %dW-%dL-%dP | **Win Rate:** %.1f%%",
				player.TotalGames, player.Wins, player.Losses, player.Pushes, player.WinRate),
		})
	}

	if len(fields) == 0 {
		description = "Nobody has finished a game yet."
	}

	return &discordgo.MessageEmbed{
		Title:       "🎮 Blackjack Leaderboard 🎮",
		Description: description,
		Color:       0x00ff00,
		Fields:      fields,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "🏆 = Most Games Played",
		},
		Timestamp: board.LastUpdated.Format(time.RFC3339),
	}
}

func paginationComponents(board *statistics.Leaderboard) []discordgo.MessageComponent {
	if board.TotalPages <= 1 {
		return nil
	}
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Previous",
					Style:    discordgo.SecondaryButton,
					CustomID: fmt.Sprintf("%s%d", RankingPagePrefix, board.CurrentPage-1),
					Disabled: board.CurrentPage <= 1,
					Emoji:    &discordgo.ComponentEmoji{Name: "⬅️"},
				},
				discordgo.Button{
					Label:    "Next",
					Style:    discordgo.SecondaryButton,
					CustomID: fmt.Sprintf("%s%d", RankingPagePrefix, board.CurrentPage+1),
					Disabled: board.CurrentPage >= board.TotalPages,
					Emoji:    &discordgo.ComponentEmoji{Name: "➡️"},
				},
			},
		},
	}
}

func resultEmoji(result entities.GameResult) string {
	switch result {
	case entities.ResultBlackjack:
		return "🎉"
	case entities.ResultPlayerWins:
		return "🏆"
	case entities.ResultPush:
		return "🤝"
	default:
		return "💸"
	}
}
