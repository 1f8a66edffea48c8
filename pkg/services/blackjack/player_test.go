package blackjack

import (
	"testing"

	"github.com/EstherBlacksmith/blackjack.V.02/internal/types"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/entities"
	"github.com/stretchr/testify/suite"
)

type PlayerTestSuite struct {
	suite.Suite
	player *Player
}

func TestPlayerSuite(t *testing.T) {
	suite.Run(t, new(PlayerTestSuite))
}

func (s *PlayerTestSuite) SetupTest() {
	s.player = NewPlayer("p1", "Esther")
}

func (s *PlayerTestSuite) TestStartsActive() {
	s.Equal(entities.PlayerActive, s.player.Status())
	s.Equal("p1", s.player.ID())
	s.Equal("Esther", s.player.Name())
	s.Equal(0, s.player.CardCount())
	s.Equal(entities.Record{}, s.player.Record())
}

func (s *PlayerTestSuite) TestReceiveCardStatusTransitions() {
	testCases := []struct {
		name     string
		cards    []entities.Card
		expected entities.PlayerStatus
	}{
		{
			name:     "stays active under 21",
			cards:    []entities.Card{card(entities.Ten, entities.Hearts), card(entities.Six, entities.Clubs)},
			expected: entities.PlayerActive,
		},
		{
			name:     "blackjack on two card 21",
			cards:    []entities.Card{card(entities.Ace, entities.Hearts), card(entities.Queen, entities.Clubs)},
			expected: entities.PlayerBlackjack,
		},
		{
			name:     "three card 21 stays active",
			cards:    []entities.Card{card(entities.Seven, entities.Hearts), card(entities.Seven, entities.Clubs), card(entities.Seven, entities.Spades)},
			expected: entities.PlayerActive,
		},
		{
			name:     "busted over 21",
			cards:    []entities.Card{card(entities.King, entities.Hearts), card(entities.Queen, entities.Clubs), card(entities.Two, entities.Spades)},
			expected: entities.PlayerBusted,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			// Setup
			p := NewPlayer("p1", "Esther")

			// Execute
			for _, c := range tc.cards {
				s.Require().NoError(p.ReceiveCard(c))
			}

			// Assert
			s.Equal(tc.expected, p.Status())
		})
	}
}

func (s *PlayerTestSuite) TestTerminalStatusFreezesHand() {
	testCases := []struct {
		name  string
		setup func(p *Player)
	}{
		{
			name: "busted",
			setup: func(p *Player) {
				_ = p.ReceiveCard(card(entities.King, entities.Hearts))
				_ = p.ReceiveCard(card(entities.Queen, entities.Hearts))
				_ = p.ReceiveCard(card(entities.Five, entities.Hearts))
			},
		},
		{
			name: "blackjack",
			setup: func(p *Player) {
				_ = p.ReceiveCard(card(entities.Ace, entities.Hearts))
				_ = p.ReceiveCard(card(entities.King, entities.Hearts))
			},
		},
		{
			name: "stood",
			setup: func(p *Player) {
				_ = p.ReceiveCard(card(entities.Nine, entities.Hearts))
				_ = p.Stand()
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			// Setup
			p := NewPlayer("p1", "Esther")
			tc.setup(p)
			status, count, score := p.Status(), p.CardCount(), p.Score()

			// Execute
			receiveErr := p.ReceiveCard(card(entities.Two, entities.Clubs))
			standErr := p.Stand()

			// Assert
			s.True(types.IsGameError(receiveErr, types.ErrInvalidState))
			s.True(types.IsGameError(standErr, types.ErrInvalidState))
			s.Equal(status, p.Status())
			s.Equal(count, p.CardCount())
			s.Equal(score, p.Score())
		})
	}
}

func (s *PlayerTestSuite) TestApplyGameResult() {
	for _, r := range []entities.GameResult{
		entities.ResultPlayerWins, entities.ResultBlackjack, entities.ResultCrupierWins,
		entities.ResultPush, entities.ResultNone,
	} {
		s.player.ApplyGameResult(r)
	}

	s.Equal(entities.Record{Wins: 2, Losses: 1, Pushes: 1}, s.player.Record())
}

func (s *PlayerTestSuite) TestNewPlayerWithRecordKeepsCounters() {
	p := NewPlayerWithRecord("p1", "Esther", entities.Record{Wins: 4, Losses: 2, Pushes: 1})
	p.ApplyGameResult(entities.ResultPush)

	s.Equal(entities.Record{Wins: 4, Losses: 2, Pushes: 2}, p.Record())
	s.Equal(entities.PlayerActive, p.Status())
}
