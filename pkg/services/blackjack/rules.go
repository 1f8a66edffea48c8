package blackjack

import "github.com/EstherBlacksmith/blackjack.V.02/pkg/entities"

const (
	BlackjackScore = 21 // Best possible score, and a natural with two cards
	DealerStandsAt = 17 // The dealer stands on this score or more
	aceBonus       = 10 // An ace promoted from 1 to 11
)

// Score returns the blackjack total for the cards. Aces count 1, and a single
// ace is promoted to 11 when that does not push the total past 21. Only one
// ace is ever promoted, so two aces score 12.
func Score(cards []entities.Card) int {
	score := 0
	hasAce := false
	for _, card := range cards {
		score += card.Value()
		if card.IsAce() {
			hasAce = true
		}
	}
	if hasAce && score+aceBonus <= BlackjackScore {
		score += aceBonus
	}
	return score
}

// IsBlackjack reports a two-card 21
func IsBlackjack(cards []entities.Card) bool {
	return len(cards) == 2 && Score(cards) == BlackjackScore
}

// IsBusted reports a score over 21
func IsBusted(cards []entities.Card) bool {
	return Score(cards) > BlackjackScore
}
