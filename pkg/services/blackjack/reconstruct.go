package blackjack

import (
	"fmt"

	"github.com/EstherBlacksmith/blackjack.V.02/internal/types"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/entities"
)

// Reconstruct rebuilds a game from persisted hands and enum values. The deck
// is rebuilt as the 52 cards minus both hands, so a resumed game never deals a
// card that is already on the table.
func Reconstruct(id, playerID, playerName string, playerCards, dealerCards []entities.Card,
	status entities.GameStatus, result entities.GameResult) (*Game, error) {
	return reconstruct(id, playerID, playerName, playerCards, dealerCards, status, result, nil)
}

// FromRecord rebuilds a game from its persisted record. A nil shuffler uses
// the default random one.
func FromRecord(rec *entities.GameRecord, shuffler entities.Shuffler) (*Game, error) {
	if rec == nil {
		return nil, types.NewGameError(types.ErrInvalidArgument, "no game record to rebuild")
	}
	return reconstruct(rec.ID, rec.PlayerID, rec.PlayerName, rec.PlayerCards, rec.DealerCards,
		rec.Status, rec.Result, shuffler)
}

func reconstruct(id, playerID, playerName string, playerCards, dealerCards []entities.Card,
	status entities.GameStatus, result entities.GameResult, shuffler entities.Shuffler) (*Game, error) {
	if id == "" || playerID == "" {
		return nil, types.NewGameError(types.ErrInvalidArgument, "game and player ids are required")
	}
	if err := checkStatusAndResult(status, result, len(playerCards), len(dealerCards)); err != nil {
		return nil, err
	}

	held := make([]entities.Card, 0, len(playerCards)+len(dealerCards))
	held = append(held, playerCards...)
	held = append(held, dealerCards...)
	deck, err := entities.NewDeckExcluding(held, shuffler)
	if err != nil {
		return nil, err
	}

	hand := newHandWith(playerCards)
	fallback := entities.PlayerActive
	if status == entities.StatusCrupierTurn || status == entities.StatusFinished {
		fallback = entities.PlayerStood
	}
	playerStatus := statusFor(hand, fallback)

	switch {
	case status == entities.StatusPlayerTurn && playerStatus != entities.PlayerActive:
		return nil, inconsistent(id, fmt.Sprintf("player is %s during the player's turn", playerStatus))
	case status == entities.StatusCrupierTurn && playerStatus == entities.PlayerBusted:
		return nil, inconsistent(id, "a busted player cannot hand over to the crupier")
	}

	dealer := NewDealer()
	dealer.hand = newHandWith(dealerCards)

	return &Game{
		id:   id,
		deck: deck,
		player: &Player{
			id:     playerID,
			name:   playerName,
			hand:   hand,
			status: playerStatus,
		},
		dealer: dealer,
		status: status,
		result: result,
	}, nil
}

func checkStatusAndResult(status entities.GameStatus, result entities.GameResult, playerCards, dealerCards int) error {
	if !status.Valid() {
		return types.NewGameError(types.ErrInvalidArgument, fmt.Sprintf("unknown game status %q", status))
	}
	if !result.Valid() {
		return types.NewGameError(types.ErrInvalidArgument, fmt.Sprintf("unknown game result %q", result))
	}
	finished := status == entities.StatusFinished
	if finished != (result != entities.ResultNone) {
		return types.NewGameError(types.ErrInvalidState,
			fmt.Sprintf("status %s does not match result %s", status, result))
	}
	if status == entities.StatusCreated {
		if playerCards != 0 || dealerCards != 0 {
			return types.NewGameError(types.ErrInvalidState, "a game that has not started holds no cards")
		}
		return nil
	}
	if playerCards < 2 || dealerCards < 2 {
		return types.NewGameError(types.ErrInvalidState, "a started game holds at least two cards per hand")
	}
	return nil
}

func inconsistent(id, reason string) error {
	return types.NewGameError(types.ErrInvalidState, fmt.Sprintf("game %s: %s", id, reason))
}
