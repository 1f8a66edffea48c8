package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecordApply(t *testing.T) {
	var r Record

	r.Apply(ResultPlayerWins)
	r.Apply(ResultBlackjack)
	r.Apply(ResultCrupierWins)
	r.Apply(ResultPush)
	r.Apply(ResultNone)

	assert.Equal(t, Record{Wins: 2, Losses: 1, Pushes: 1}, r)
	assert.Equal(t, 4, r.TotalGames())
	assert.InDelta(t, 50.0, r.WinRate(), 0.001)
}

func TestRecordWinRateWithoutGames(t *testing.T) {
	assert.Equal(t, 0.0, Record{}.WinRate())
}

func TestStatusAndResultValidity(t *testing.T) {
	assert.True(t, StatusCrupierTurn.Valid())
	assert.False(t, GameStatus("PAUSED").Valid())
	assert.True(t, ResultPush.Valid())
	assert.False(t, GameResult("DRAW").Valid())
	assert.True(t, ResultBlackjack.IsWin())
	assert.False(t, ResultPush.IsWin())
}

func TestHistoryEntry(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	finished := created.Add(2 * time.Minute)

	rec := &GameRecord{
		ID:          "g1",
		Status:      StatusFinished,
		Result:      ResultPlayerWins,
		PlayerScore: 20,
		DealerScore: 18,
		CreatedAt:   created,
		FinishedAt:  &finished,
	}

	entry, ok := rec.HistoryEntry()
	assert.True(t, ok)
	assert.Equal(t, GameHistoryEntry{GameID: "g1", PlayedAt: finished, Result: ResultPlayerWins, PlayerScore: 20, DealerScore: 18}, entry)

	rec.Status = StatusPlayerTurn
	rec.Result = ResultNone
	_, ok = rec.HistoryEntry()
	assert.False(t, ok)
}

func TestGameRecordCloneIsDeep(t *testing.T) {
	finished := time.Now()
	rec := &GameRecord{PlayerCards: []Card{NewCard(Ace, Hearts)}, FinishedAt: &finished}

	clone := rec.Clone()
	clone.PlayerCards[0] = NewCard(Two, Clubs)
	*clone.FinishedAt = finished.Add(time.Hour)

	assert.Equal(t, NewCard(Ace, Hearts), rec.PlayerCards[0])
	assert.Equal(t, finished, *rec.FinishedAt)
}
