package entities

import (
	"errors"
	"testing"

	"github.com/EstherBlacksmith/blackjack.V.02/internal/types"
	"github.com/stretchr/testify/suite"
)

type DeckTestSuite struct {
	suite.Suite
}

func TestDeckSuite(t *testing.T) {
	suite.Run(t, new(DeckTestSuite))
}

func (s *DeckTestSuite) TestNewDeckIsComplete() {
	// Setup
	deck := NewDeck()
	s.Equal(DeckSize, deck.Size())

	// Execute
	seen := make(map[Card]int)
	for !deck.IsEmpty() {
		card, err := deck.Draw()
		s.Require().NoError(err)
		seen[card]++
	}

	// Assert
	s.Len(seen, DeckSize)
	for _, suit := range AllSuits() {
		for _, rank := range AllRanks() {
			s.Equal(1, seen[NewCard(rank, suit)], "%s should be drawn exactly once", NewCard(rank, suit))
		}
	}
}

func (s *DeckTestSuite) TestSizePlusDrawnIsConstant() {
	deck := NewDeckWithShuffler(NewSeededShuffler(7))
	for drawn := 0; drawn < DeckSize; drawn++ {
		s.Equal(DeckSize, deck.Size()+drawn)
		_, err := deck.Draw()
		s.Require().NoError(err)
	}
	s.True(deck.IsEmpty())
}

func (s *DeckTestSuite) TestDrawFromEmptyDeck() {
	// Setup
	deck := NewStackedDeck()

	// Execute
	_, err := deck.Draw()

	// Assert
	s.True(errors.Is(err, ErrEmptyDeck))
	s.True(types.IsGameError(err, types.ErrEmptyDeck))
	s.Equal(0, deck.Size())
}

func (s *DeckTestSuite) TestStackedDeckDrawOrder() {
	deck := NewStackedDeck(NewCard(Ten, Hearts), NewCard(Six, Clubs), NewCard(King, Spades))

	for _, want := range []Card{NewCard(Ten, Hearts), NewCard(Six, Clubs), NewCard(King, Spades)} {
		got, err := deck.Draw()
		s.Require().NoError(err)
		s.Equal(want, got)
	}

	// Shuffle is a no-op on a stacked deck
	deck = NewStackedDeck(NewCard(Ace, Spades), NewCard(Two, Spades))
	deck.Shuffle()
	first, _ := deck.Draw()
	s.Equal(NewCard(Ace, Spades), first)
}

func (s *DeckTestSuite) TestSeededShuffleIsReproducible() {
	a := NewDeckWithShuffler(NewSeededShuffler(42))
	b := NewDeckWithShuffler(NewSeededShuffler(42))

	s.Equal(a.Cards(), b.Cards())
}

func (s *DeckTestSuite) TestResetRestoresFullDeck() {
	deck := NewDeck()
	for i := 0; i < 10; i++ {
		_, err := deck.Draw()
		s.Require().NoError(err)
	}

	deck.Reset()

	s.Equal(DeckSize, deck.Size())
}

func (s *DeckTestSuite) TestCardsReturnsCopy() {
	deck := NewStackedDeck(NewCard(Ace, Hearts))
	cards := deck.Cards()
	cards[0] = NewCard(King, Clubs)

	got, err := deck.Draw()
	s.NoError(err)
	s.Equal(NewCard(Ace, Hearts), got)
}

func (s *DeckTestSuite) TestNewDeckExcluding() {
	// Setup
	held := []Card{NewCard(Ace, Hearts), NewCard(King, Spades), NewCard(Five, Diamonds)}

	// Execute
	deck, err := NewDeckExcluding(held, NewSeededShuffler(1))

	// Assert
	s.Require().NoError(err)
	s.Equal(DeckSize-len(held), deck.Size())
	for _, c := range deck.Cards() {
		s.NotContains(held, c)
	}
}

func (s *DeckTestSuite) TestNewDeckExcludingRejectsDuplicates() {
	_, err := NewDeckExcluding([]Card{NewCard(Ace, Hearts), NewCard(Ace, Hearts)}, nil)
	s.True(types.IsGameError(err, types.ErrInvalidState))

	_, err = NewDeckExcluding([]Card{{Rank: "ELEVEN", Suit: Hearts}}, nil)
	s.True(types.IsGameError(err, types.ErrInvalidArgument))
}
