package blackjack

import (
	"testing"

	"github.com/EstherBlacksmith/blackjack.V.02/pkg/entities"
	"github.com/stretchr/testify/suite"
)

func card(rank entities.Rank, suit entities.Suit) entities.Card {
	return entities.NewCard(rank, suit)
}

type RulesTestSuite struct {
	suite.Suite
}

func TestRulesSuite(t *testing.T) {
	suite.Run(t, new(RulesTestSuite))
}

func (s *RulesTestSuite) TestScore() {
	testCases := []struct {
		name     string
		cards    []entities.Card
		expected int
	}{
		{name: "empty hand", cards: nil, expected: 0},
		{name: "ace king", cards: []entities.Card{card(entities.Ace, entities.Spades), card(entities.King, entities.Hearts)}, expected: 21},
		{name: "two aces promote only one", cards: []entities.Card{card(entities.Ace, entities.Spades), card(entities.Ace, entities.Hearts)}, expected: 12},
		{name: "three aces", cards: []entities.Card{card(entities.Ace, entities.Spades), card(entities.Ace, entities.Hearts), card(entities.Ace, entities.Clubs)}, expected: 13},
		{name: "bust", cards: []entities.Card{card(entities.King, entities.Spades), card(entities.Queen, entities.Hearts), card(entities.Two, entities.Clubs)}, expected: 22},
		{name: "soft seventeen", cards: []entities.Card{card(entities.Ace, entities.Spades), card(entities.Six, entities.Hearts)}, expected: 17},
		{name: "ace stays low past eleven", cards: []entities.Card{card(entities.Ace, entities.Spades), card(entities.Six, entities.Hearts), card(entities.Nine, entities.Clubs)}, expected: 16},
		{name: "ace promoted at exactly eleven", cards: []entities.Card{card(entities.Ace, entities.Spades), card(entities.Five, entities.Hearts), card(entities.Five, entities.Clubs)}, expected: 21},
		{name: "face cards count ten", cards: []entities.Card{card(entities.Jack, entities.Spades), card(entities.Queen, entities.Hearts)}, expected: 20},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, Score(tc.cards))
		})
	}
}

func (s *RulesTestSuite) TestIsBlackjack() {
	s.True(IsBlackjack([]entities.Card{card(entities.Ace, entities.Spades), card(entities.Ten, entities.Hearts)}))
	s.False(IsBlackjack([]entities.Card{card(entities.Ace, entities.Spades), card(entities.Five, entities.Hearts), card(entities.Five, entities.Clubs)}),
		"three cards scoring 21 are not a blackjack")
	s.False(IsBlackjack([]entities.Card{card(entities.King, entities.Spades), card(entities.Queen, entities.Hearts)}))
}

func (s *RulesTestSuite) TestIsBusted() {
	s.True(IsBusted([]entities.Card{card(entities.King, entities.Spades), card(entities.Queen, entities.Hearts), card(entities.Two, entities.Clubs)}))
	s.False(IsBusted([]entities.Card{card(entities.King, entities.Spades), card(entities.Ace, entities.Hearts), card(entities.Queen, entities.Clubs)}))
}
