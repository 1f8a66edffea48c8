package blackjack

import "github.com/EstherBlacksmith/blackjack.V.02/pkg/entities"

// Dealer is the house party (the crupier). It follows a fixed policy: hit on
// 16 or less, stand on 17 or more.
type Dealer struct {
	hand *Hand
}

// NewDealer creates a dealer with an empty hand
func NewDealer() *Dealer {
	return &Dealer{hand: NewHand()}
}

// ReceiveCard adds a card to the dealer's hand
func (d *Dealer) ReceiveCard(card entities.Card) {
	d.hand.AddCard(card)
}

// MustHit reports whether policy forces the dealer to draw
func (d *Dealer) MustHit() bool {
	return d.hand.Score() < DealerStandsAt
}

// MustStand reports whether policy forces the dealer to stop drawing
func (d *Dealer) MustStand() bool {
	return d.hand.Score() >= DealerStandsAt
}

func (d *Dealer) IsBusted() bool         { return d.hand.IsBusted() }
func (d *Dealer) HasBlackjack() bool     { return d.hand.IsBlackjack() }
func (d *Dealer) Score() int             { return d.hand.Score() }
func (d *Dealer) Cards() []entities.Card { return d.hand.Cards() }
func (d *Dealer) CardCount() int         { return d.hand.CardCount() }
