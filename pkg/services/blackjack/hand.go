package blackjack

import "github.com/EstherBlacksmith/blackjack.V.02/pkg/entities"

// Hand represents the ordered cards held by one party in a game of blackjack
type Hand struct {
	cards []entities.Card
}

// NewHand creates a new empty hand
func NewHand() *Hand {
	return &Hand{cards: make([]entities.Card, 0, 4)}
}

func newHandWith(cards []entities.Card) *Hand {
	h := NewHand()
	h.cards = append(h.cards, cards...)
	return h
}

// AddCard appends a card to the hand
func (h *Hand) AddCard(card entities.Card) {
	h.cards = append(h.cards, card)
}

// Cards returns a copy of the cards in deal order
func (h *Hand) Cards() []entities.Card {
	out := make([]entities.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Score returns the hand's blackjack total
func (h *Hand) Score() int {
	return Score(h.cards)
}

// CardCount returns the number of cards held
func (h *Hand) CardCount() int {
	return len(h.cards)
}

// IsEmpty reports whether the hand holds no cards
func (h *Hand) IsEmpty() bool {
	return len(h.cards) == 0
}

// IsBlackjack reports a two-card 21
func (h *Hand) IsBlackjack() bool {
	return IsBlackjack(h.cards)
}

// IsBusted reports a score over 21
func (h *Hand) IsBusted() bool {
	return IsBusted(h.cards)
}
