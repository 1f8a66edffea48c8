package game

import (
	"time"

	"github.com/EstherBlacksmith/blackjack.V.02/pkg/entities"
)

// gameIndexMapping is the mapping of the finished games index
const gameIndexMapping = `{
	"mappings": {
		"properties": {
			"game_id": { "type": "keyword" },
			"player_id": { "type": "keyword" },
			"player_name": { "type": "keyword" },
			"player_cards": {
				"properties": {
					"rank": { "type": "keyword" },
					"suit": { "type": "keyword" }
				}
			},
			"player_score": { "type": "integer" },
			"crupier_cards": {
				"properties": {
					"rank": { "type": "keyword" },
					"suit": { "type": "keyword" }
				}
			},
			"crupier_score": { "type": "integer" },
			"result": { "type": "keyword" },
			"created_at": { "type": "date" },
			"finished_at": { "type": "date" }
		}
	}
}`

// ESGameDocument represents a finished game in Elasticsearch
type ESGameDocument struct {
	GameID       string          `json:"game_id"`
	PlayerID     string          `json:"player_id"`
	PlayerName   string          `json:"player_name"`
	PlayerCards  []entities.Card `json:"player_cards"`
	PlayerScore  int             `json:"player_score"`
	CrupierCards []entities.Card `json:"crupier_cards"`
	CrupierScore int             `json:"crupier_score"`
	Result       string          `json:"result"`
	CreatedAt    time.Time       `json:"created_at"`
	FinishedAt   time.Time       `json:"finished_at"`
}

func newESGameDocument(game *entities.GameRecord) ESGameDocument {
	finishedAt := game.UpdatedAt
	if game.FinishedAt != nil {
		finishedAt = *game.FinishedAt
	}
	return ESGameDocument{
		GameID:       game.ID,
		PlayerID:     game.PlayerID,
		PlayerName:   game.PlayerName,
		PlayerCards:  game.PlayerCards,
		PlayerScore:  game.PlayerScore,
		CrupierCards: game.DealerCards,
		CrupierScore: game.DealerScore,
		Result:       string(game.Result),
		CreatedAt:    game.CreatedAt,
		FinishedAt:   finishedAt,
	}
}

// record converts the document back into a finished game record
func (d ESGameDocument) record() *entities.GameRecord {
	finishedAt := d.FinishedAt
	return &entities.GameRecord{
		ID:          d.GameID,
		PlayerID:    d.PlayerID,
		PlayerName:  d.PlayerName,
		PlayerCards: d.PlayerCards,
		PlayerScore: d.PlayerScore,
		DealerCards: d.CrupierCards,
		DealerScore: d.CrupierScore,
		Status:      entities.StatusFinished,
		Result:      entities.GameResult(d.Result),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.FinishedAt,
		FinishedAt:  &finishedAt,
	}
}
