package commands

import (
	"context"
	"testing"
	"time"

	discordmock "github.com/EstherBlacksmith/blackjack.V.02/internal/discord/mock"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/entities"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/services/statistics"
	mock_statistics_service "github.com/EstherBlacksmith/blackjack.V.02/pkg/services/statistics/mock"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testBoard(page, totalPages int) *statistics.Leaderboard {
	return &statistics.Leaderboard{
		Players: []*statistics.PlayerRank{
			{Rank: 1, PlayerName: "Bruno", Wins: 5, Losses: 5, TotalGames: 10, WinRate: 50, IsTopPlayer: true},
			{Rank: 4, PlayerName: "Dani", Wins: 2, Losses: 2, TotalGames: 4, WinRate: 50},
		},
		TotalPlayers:   4,
		CurrentPage:    page,
		TotalPages:     totalPages,
		PlayersPerPage: 10,
		LastUpdated:    time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestDefinitions(t *testing.T) {
	cmd := NewStatsCommand(nil)

	assert.Equal(t, "stats", cmd.StatsDefinition().Name)
	ranking := cmd.RankingDefinition()
	assert.Equal(t, "ranking", ranking.Name)
	require.Len(t, ranking.Options, 1)
	assert.Equal(t, discordgo.ApplicationCommandOptionInteger, ranking.Options[0].Type)
	assert.False(t, ranking.Options[0].Required)
}

func TestCreateLeaderboardEmbed(t *testing.T) {
	embed := createLeaderboardEmbed(testBoard(1, 1))

	assert.Equal(t, "Showing page 1 of 1 (4 total players)", embed.Description)
	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "👑 Bruno 🏆", embed.Fields[0].Name)
	assert.Equal(t, "4. Dani", embed.Fields[1].Name)
	assert.Contains(t, embed.Fields[0].Value, "5W-5L-0P")
	assert.Contains(t, embed.Fields[0].Value, "50.0%")
	assert.Equal(t, "2025-03-01T12:00:00Z", embed.Timestamp)
}

func TestCreateLeaderboardEmbedEmpty(t *testing.T) {
	embed := createLeaderboardEmbed(&statistics.Leaderboard{CurrentPage: 1})

	assert.Empty(t, embed.Fields)
	assert.Equal(t, "Nobody has finished a game yet.", embed.Description)
}

func TestPaginationComponents(t *testing.T) {
	assert.Nil(t, paginationComponents(testBoard(1, 1)))

	components := paginationComponents(testBoard(2, 3))
	require.Len(t, components, 1)
	row := components[0].(discordgo.ActionsRow)
	prev := row.Components[0].(discordgo.Button)
	next := row.Components[1].(discordgo.Button)
	assert.Equal(t, "ranking_page:1", prev.CustomID)
	assert.False(t, prev.Disabled)
	assert.Equal(t, "ranking_page:3", next.CustomID)
	assert.False(t, next.Disabled)

	row = paginationComponents(testBoard(3, 3))[0].(discordgo.ActionsRow)
	assert.True(t, row.Components[1].(discordgo.Button).Disabled)
}

func TestCreateStatsEmbed(t *testing.T) {
	stats := &entities.PlayerStatistics{
		PlayerName: "Esther",
		TotalGames: 2,
		Wins:       1,
		Losses:     1,
		WinRate:    50,
		RecentGames: []entities.GameHistoryEntry{
			{GameID: "g2", Result: entities.ResultCrupierWins, PlayerScore: 23, DealerScore: 17, PlayedAt: time.Unix(1700000000, 0)},
		},
	}

	embed := createStatsEmbed(stats)

	require.Len(t, embed.Fields, 4)
	assert.Equal(t, "1W-1L-0P", embed.Fields[1].Value)
	assert.Equal(t, "💸 **CRUPIER_WINS** 23 vs 17 <t:1700000000:R>", embed.Fields[3].Value)
}

func TestHandleRankingPageButton(t *testing.T) {
	// Setup
	ctrl := gomock.NewController(t)
	stats := mock_statistics_service.NewMockStatisticsService(ctrl)
	session := &discordmock.SessionHandler{}
	session.Test(t)
	cmd := NewStatsCommand(stats)
	ctx := context.Background()

	i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type: discordgo.InteractionMessageComponent,
		Data: discordgo.MessageComponentInteractionData{CustomID: "ranking_page:2"},
	}}
	stats.EXPECT().GetRanking(ctx, 2, rankingPerPage).Return(testBoard(2, 2), nil)
	session.On("InteractionRespond", i.Interaction, mock.MatchedBy(func(r *discordgo.InteractionResponse) bool {
		return r.Type == discordgo.InteractionResponseUpdateMessage
	})).Return(nil)

	// Execute
	handled, err := cmd.HandleComponent(ctx, session, i)

	// Assert
	assert.True(t, handled)
	assert.NoError(t, err)
	session.AssertExpectations(t)
}

func TestHandleComponentIgnoresOtherButtons(t *testing.T) {
	cmd := NewStatsCommand(nil)
	i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type: discordgo.InteractionMessageComponent,
		Data: discordgo.MessageComponentInteractionData{CustomID: "hit:g1"},
	}}

	handled, err := cmd.HandleComponent(context.Background(), &discordmock.SessionHandler{}, i)

	assert.False(t, handled)
	assert.NoError(t, err)
}

func TestHandleRankingCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	stats := mock_statistics_service.NewMockStatisticsService(ctrl)
	session := &discordmock.SessionHandler{}
	session.Test(t)
	cmd := NewStatsCommand(stats)
	ctx := context.Background()

	i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type: discordgo.InteractionApplicationCommand,
		Data: discordgo.ApplicationCommandInteractionData{
			Name: "ranking",
			Options: []*discordgo.ApplicationCommandInteractionDataOption{
				{Name: "page", Type: discordgo.ApplicationCommandOptionInteger, Value: float64(3)},
			},
		},
	}}
	stats.EXPECT().GetRanking(ctx, 3, rankingPerPage).Return(testBoard(3, 3), nil)
	session.On("InteractionRespond", i.Interaction, mock.Anything).Return(nil)

	assert.NoError(t, cmd.HandleRanking(ctx, session, i))
	session.AssertExpectations(t)
}
