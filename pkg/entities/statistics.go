package entities

import "time"

// PlayerStatistics represents aggregated blackjack statistics for one player
type PlayerStatistics struct {
	PlayerID    string             `json:"playerId"`
	PlayerName  string             `json:"playerName"`
	TotalGames  int                `json:"totalGames"`
	Wins        int                `json:"wins"`
	Losses      int                `json:"losses"`
	Pushes      int                `json:"pushes"`
	WinRate     float64            `json:"winRate"`
	RecentGames []GameHistoryEntry `json:"recentGames"`
}

// NewPlayerStatistics builds statistics from a player's counters
func NewPlayerStatistics(p *Player) *PlayerStatistics {
	return &PlayerStatistics{
		PlayerID:    p.ID,
		PlayerName:  p.Name,
		TotalGames:  p.Record.TotalGames(),
		Wins:        p.Record.Wins,
		Losses:      p.Record.Losses,
		Pushes:      p.Record.Pushes,
		WinRate:     p.Record.WinRate(),
		RecentGames: []GameHistoryEntry{},
	}
}

// GameHistoryEntry is one finished game as shown in a player's history
type GameHistoryEntry struct {
	GameID      string     `json:"gameId"`
	PlayedAt    time.Time  `json:"playedAt"`
	Result      GameResult `json:"result"`
	PlayerScore int        `json:"playerScore"`
	DealerScore int        `json:"dealerScore"`
}

// HistoryEntry summarizes a finished game record. Unfinished games have no
// history entry.
func (g *GameRecord) HistoryEntry() (GameHistoryEntry, bool) {
	if g.Status != StatusFinished || g.Result == ResultNone {
		return GameHistoryEntry{}, false
	}
	playedAt := g.CreatedAt
	if g.FinishedAt != nil {
		playedAt = *g.FinishedAt
	}
	return GameHistoryEntry{
		GameID:      g.ID,
		PlayedAt:    playedAt,
		Result:      g.Result,
		PlayerScore: g.PlayerScore,
		DealerScore: g.DealerScore,
	}, true
}
