package blackjack

import (
	"fmt"

	"github.com/EstherBlacksmith/blackjack.V.02/internal/types"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/entities"
)

// Player is the human party at the table. Once the status leaves ACTIVE the
// hand is frozen.
type Player struct {
	id     string
	name   string
	hand   *Hand
	status entities.PlayerStatus
	record entities.Record
}

// NewPlayer creates an ACTIVE player with an empty hand and no history
func NewPlayer(id, name string) *Player {
	return NewPlayerWithRecord(id, name, entities.Record{})
}

// NewPlayerWithRecord creates an ACTIVE player that keeps prior counters
func NewPlayerWithRecord(id, name string, record entities.Record) *Player {
	return &Player{
		id:     id,
		name:   name,
		hand:   NewHand(),
		status: entities.PlayerActive,
		record: record,
	}
}

// ReceiveCard adds a card and updates the status from the new hand
func (p *Player) ReceiveCard(card entities.Card) error {
	if err := p.requireActive("receive a card"); err != nil {
		return err
	}
	p.hand.AddCard(card)
	p.status = statusFor(p.hand, entities.PlayerActive)
	return nil
}

// Stand ends the player's turn
func (p *Player) Stand() error {
	if err := p.requireActive("stand"); err != nil {
		return err
	}
	p.status = entities.PlayerStood
	return nil
}

// ApplyGameResult counts a finished game in the player's record
func (p *Player) ApplyGameResult(result entities.GameResult) {
	p.record.Apply(result)
}

func (p *Player) requireActive(action string) error {
	if p.status != entities.PlayerActive {
		return types.NewGameError(types.ErrInvalidState,
			fmt.Sprintf("player cannot %s while %s", action, p.status))
	}
	return nil
}

// statusFor derives the status a hand forces; fallback applies when the
// hand forces nothing.
func statusFor(h *Hand, fallback entities.PlayerStatus) entities.PlayerStatus {
	switch {
	case h.IsBlackjack():
		return entities.PlayerBlackjack
	case h.IsBusted():
		return entities.PlayerBusted
	default:
		return fallback
	}
}

func (p *Player) ID() string                    { return p.id }
func (p *Player) Name() string                  { return p.name }
func (p *Player) Cards() []entities.Card        { return p.hand.Cards() }
func (p *Player) Score() int                    { return p.hand.Score() }
func (p *Player) CardCount() int                { return p.hand.CardCount() }
func (p *Player) Status() entities.PlayerStatus { return p.status }
func (p *Player) Record() entities.Record       { return p.record }
func (p *Player) IsBusted() bool                { return p.status == entities.PlayerBusted }
func (p *Player) HasBlackjack() bool            { return p.status == entities.PlayerBlackjack }
