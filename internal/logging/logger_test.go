package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/EstherBlacksmith/blackjack.V.02/internal/types"
	"github.com/stretchr/testify/suite"
)

type LoggerTestSuite struct {
	suite.Suite
	buf *bytes.Buffer
}

func TestLoggerSuite(t *testing.T) {
	suite.Run(t, new(LoggerTestSuite))
}

func (s *LoggerTestSuite) SetupTest() {
	s.buf = &bytes.Buffer{}
}

func (s *LoggerTestSuite) TestLevelFiltering() {
	// Setup
	logger := NewLoggerWithWriter(s.buf, WARN)

	// Execute
	logger.Debug("hidden %d", 1)
	logger.Info("hidden %d", 2)
	logger.Warn("shown %d", 3)
	logger.Error("shown %d", 4)

	// Assert
	out := s.buf.String()
	s.NotContains(out, "hidden")
	s.Contains(out, "WARN  logger_test.go")
	s.Contains(out, "shown 3")
	s.Contains(out, "ERROR")
	s.Contains(out, "shown 4")
}

func (s *LoggerTestSuite) TestComponentTag() {
	logger := NewLoggerWithWriter(s.buf, DEBUG).With("game-service")

	logger.Info("dealt %s", "cards")

	s.Contains(s.buf.String(), "[game-service]: dealt cards")
}

func (s *LoggerTestSuite) TestLogError() {
	testCases := []struct {
		name     string
		err      error
		contains []string
	}{
		{
			name:     "Game error with cause",
			err:      types.WrapError(types.ErrDatabaseError, "save failed", errors.New("locked")),
			contains: []string{"Code: DATABASE_ERROR", "Message: save failed", "Cause: locked"},
		},
		{
			name:     "Plain error",
			err:      errors.New("boom"),
			contains: []string{"Unexpected error: boom"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.buf.Reset()
			NewLoggerWithWriter(s.buf, INFO).LogError(tc.err)
			for _, want := range tc.contains {
				s.Contains(s.buf.String(), want)
			}
		})
	}
}

func (s *LoggerTestSuite) TestParseLevel() {
	testCases := []struct {
		input    string
		expected Level
		wantErr  bool
	}{
		{input: "debug", expected: DEBUG},
		{input: "INFO", expected: INFO},
		{input: "Warn", expected: WARN},
		{input: "error", expected: ERROR},
		{input: "verbose", expected: INFO, wantErr: true},
	}

	for _, tc := range testCases {
		s.Run(tc.input, func() {
			level, err := ParseLevel(tc.input)
			if tc.wantErr {
				s.Error(err)
			} else {
				s.NoError(err)
			}
			s.Equal(tc.expected, level)
		})
	}
}
