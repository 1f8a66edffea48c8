package entities

import "time"

// GameRecord is the persisted form of a game: enough to rebuild it, plus the
// derived scores that history and search need without re-scoring.
type GameRecord struct {
	ID          string     `json:"id"`
	PlayerID    string     `json:"playerId"`
	PlayerName  string     `json:"playerName"`
	PlayerCards []Card     `json:"playerCards"`
	PlayerScore int        `json:"playerScore"`
	DealerCards []Card     `json:"crupierCards"`
	DealerScore int        `json:"crupierScore"`
	Status      GameStatus `json:"gameStatus"`
	Result      GameResult `json:"gameResult"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	FinishedAt  *time.Time `json:"finishedAt,omitempty"`
}

// IsFinished reports whether the recorded game has ended
func (g *GameRecord) IsFinished() bool {
	return g.Status == StatusFinished
}

// Clone returns a deep copy so stores never share card slices with callers
func (g *GameRecord) Clone() *GameRecord {
	c := *g
	c.PlayerCards = append([]Card(nil), g.PlayerCards...)
	c.DealerCards = append([]Card(nil), g.DealerCards...)
	if g.FinishedAt != nil {
		t := *g.FinishedAt
		c.FinishedAt = &t
	}
	return &c
}
