package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ErrorTestSuite struct {
	suite.Suite
}

func TestErrorSuite(t *testing.T) {
	suite.Run(t, new(ErrorTestSuite))
}

func (s *ErrorTestSuite) TestNewGameError() {
	// Setup
	code := ErrNotPlayerTurn
	message := "it is not the player's turn"

	// Execute
	err := NewGameError(code, message)

	// Assert
	s.Equal(code, err.Code, "Error code should match")
	s.Equal(message, err.Message, "Error message should match")
	s.Nil(err.Err, "Underlying error should be nil")
}

func (s *ErrorTestSuite) TestWrapError() {
	// Setup
	underlying := errors.New("connection refused")

	// Execute
	err := WrapError(ErrDatabaseError, "failed to save game", underlying)

	// Assert
	s.Equal(ErrDatabaseError, err.Code)
	s.Equal("failed to save game", err.Message)
	s.ErrorIs(err, underlying, "Wrapped error should be reachable through Unwrap")
}

func (s *ErrorTestSuite) TestErrorString() {
	testCases := []struct {
		name     string
		err      *GameError
		expected string
	}{
		{
			name:     "Simple error",
			err:      NewGameError(ErrEmptyDeck, "the deck is empty"),
			expected: "EMPTY_DECK: the deck is empty",
		},
		{
			name:     "Wrapped error",
			err:      WrapError(ErrDatabaseError, "failed to load game", errors.New("disk I/O error")),
			expected: "DATABASE_ERROR: failed to load game (disk I/O error)",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, tc.err.Error())
		})
	}
}

func (s *ErrorTestSuite) TestIsGameError() {
	// Setup
	gameErr := NewGameError(ErrGameNotFound, "game not found")
	wrapped := fmt.Errorf("loading game: %w", gameErr)

	testCases := []struct {
		name     string
		err      error
		code     ErrorCode
		expected bool
	}{
		{name: "Matching game error", err: gameErr, code: ErrGameNotFound, expected: true},
		{name: "Wrapped game error", err: wrapped, code: ErrGameNotFound, expected: true},
		{name: "Non-matching game error", err: gameErr, code: ErrInternalError, expected: false},
		{name: "Regular error", err: errors.New("boom"), code: ErrGameNotFound, expected: false},
		{name: "Nil error", err: nil, code: ErrGameNotFound, expected: false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, IsGameError(tc.err, tc.code))
		})
	}
}

func (s *ErrorTestSuite) TestAs() {
	// Setup
	gameErr := NewGameError(ErrPlayerNotFound, "player not found")

	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "Game error", err: gameErr, expected: true},
		{name: "Wrapped game error", err: fmt.Errorf("outer: %w", gameErr), expected: true},
		{name: "Regular error", err: errors.New("regular error"), expected: false},
		{name: "Nil error", err: nil, expected: false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			var target *GameError
			result := As(tc.err, &target)
			s.Equal(tc.expected, result)
			if tc.expected {
				s.Same(gameErr, target)
			}
		})
	}
}

func (s *ErrorTestSuite) TestErrorsIsMatchesByCode() {
	sentinel := NewGameError(ErrEmptyDeck, "the deck is empty")
	other := NewGameError(ErrEmptyDeck, "no cards left")

	s.True(errors.Is(other, sentinel))
	s.False(errors.Is(NewGameError(ErrInvalidState, "x"), sentinel))
}

func (s *ErrorTestSuite) TestClassifiers() {
	s.True(IsInvalidTurn(NewGameError(ErrNotPlayerTurn, "")))
	s.True(IsInvalidTurn(NewGameError(ErrNotCrupierTurn, "")))
	s.True(IsInvalidTurn(fmt.Errorf("hit: %w", NewGameError(ErrInvalidState, ""))))
	s.False(IsInvalidTurn(NewGameError(ErrEmptyDeck, "")))
	s.False(IsInvalidTurn(nil))

	s.True(IsNotFound(NewGameError(ErrGameNotFound, "")))
	s.True(IsNotFound(NewGameError(ErrPlayerNotFound, "")))
	s.False(IsNotFound(errors.New("plain")))

	s.Equal(ErrEmptyDeck, CodeOf(NewGameError(ErrEmptyDeck, "")))
	s.Equal(ErrInternalError, CodeOf(errors.New("plain")))
}
