package statistics

import (
	"context"
	"sort"
	"time"

	"github.com/EstherBlacksmith/blackjack.V.02/pkg/entities"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/repositories/game"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/repositories/player"
)

const (
	// RecentGamesLimit is how many games GetPlayerStats includes
	RecentGamesLimit = 10
	defaultPerPage   = 10
	maxPerPage       = 100
)

// Service provides methods for retrieving and processing player statistics
type Service struct {
	games   game.Repository
	players player.Repository
	now     func() time.Time
}

var _ StatisticsService = (*Service)(nil)

// NewService creates a new statistics service
func NewService(games game.Repository, players player.Repository) *Service {
	return &Service{
		games:   games,
		players: players,
		now:     time.Now,
	}
}

// PlayerRank represents a player's statistics with ranking information
type PlayerRank struct {
	Rank        int     `json:"rank"`
	PlayerID    string  `json:"playerId"`
	PlayerName  string  `json:"playerName"`
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
	Pushes      int     `json:"pushes"`
	TotalGames  int     `json:"totalGames"`
	WinRate     float64 `json:"winRate"`
	IsTopPlayer bool    `json:"isTopPlayer"`
}

// Leaderboard represents a paginated leaderboard of player statistics
type Leaderboard struct {
	Players        []*PlayerRank `json:"players"`
	TotalPlayers   int           `json:"totalPlayers"`
	CurrentPage    int           `json:"currentPage"`
	TotalPages     int           `json:"totalPages"`
	PlayersPerPage int           `json:"playersPerPage"`
	LastUpdated    time.Time     `json:"lastUpdated"`
}

// GetPlayerStats returns a player's totals and most recent games
func (s *Service) GetPlayerStats(ctx context.Context, playerID string) (*entities.PlayerStatistics, error) {
	p, err := s.players.FindByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	stats := entities.NewPlayerStatistics(p)
	history, err := s.GetPlayerHistory(ctx, playerID, RecentGamesLimit)
	if err != nil {
		return nil, err
	}
	stats.RecentGames = history
	return stats, nil
}

// GetPlayerHistory returns a player's finished games, newest first
func (s *Service) GetPlayerHistory(ctx context.Context, playerID string, limit int) ([]entities.GameHistoryEntry, error) {
	records, err := s.games.ListByPlayer(ctx, playerID, limit)
	if err != nil {
		return nil, err
	}

	history := make([]entities.GameHistoryEntry, 0, len(records))
	for _, rec := range records {
		if entry, ok := rec.HistoryEntry(); ok {
			history = append(history, entry)
		}
	}
	return history, nil
}

// GetRanking returns one page of the leaderboard. Players are ordered by
// wins, then win rate, then name; players without games are left out.
func (s *Service) GetRanking(ctx context.Context, page, perPage int) (*Leaderboard, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	players, err := s.players.List(ctx)
	if err != nil {
		return nil, err
	}

	ranks := make([]*PlayerRank, 0, len(players))
	for _, p := range players {
		if p.Record.TotalGames() == 0 {
			continue
		}
		ranks = append(ranks, &PlayerRank{
			PlayerID:   p.ID,
			PlayerName: p.Name,
			Wins:       p.Record.Wins,
			Losses:     p.Record.Losses,
			Pushes:     p.Record.Pushes,
			TotalGames: p.Record.TotalGames(),
			WinRate:    p.Record.WinRate(),
		})
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		a, b := ranks[i], ranks[j]
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.WinRate != b.WinRate {
			return a.WinRate > b.WinRate
		}
		return a.PlayerName < b.PlayerName
	})

	if len(ranks) > 0 {
		mostGames := 0
		for i := 1; i < len(ranks); i++ {
			if ranks[i].TotalGames > ranks[mostGames].TotalGames {
				mostGames = i
			}
		}
		ranks[mostGames].IsTopPlayer = true
	}
	for i := range ranks {
		ranks[i].Rank = i + 1
	}

	total := len(ranks)
	totalPages := (total + perPage - 1) / perPage
	if page > totalPages && totalPages > 0 {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if end > total {
		end = total
	}
	current := []*PlayerRank{}
	if start < total {
		current = ranks[start:end]
	}

	return &Leaderboard{
		Players:        current,
		TotalPlayers:   total,
		CurrentPage:    page,
		TotalPages:     totalPages,
		PlayersPerPage: perPage,
		LastUpdated:    s.now(),
	}, nil
}
