package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/EstherBlacksmith/blackjack.V.02/internal/types"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/entities"
)

type cardResponse struct {
	Rank  entities.Rank `json:"rank"`
	Suit  entities.Suit `json:"suit"`
	Value int           `json:"value"`
}

type gameResponse struct {
	ID           string              `json:"id"`
	PlayerID     string              `json:"playerId"`
	PlayerName   string              `json:"playerName"`
	PlayerCards  []cardResponse      `json:"playerCards"`
	PlayerScore  int                 `json:"playerScore"`
	CrupierCards []cardResponse      `json:"crupierCards"`
	CrupierScore int                 `json:"crupierScore"`
	Status       entities.GameStatus `json:"gameStatus"`
	Result       entities.GameResult `json:"gameResult"`
	CreatedAt    time.Time           `json:"createdAt"`
	FinishedAt   *time.Time          `json:"finishedAt,omitempty"`
}

type playerResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Wins       int       `json:"wins"`
	Losses     int       `json:"losses"`
	Pushes     int       `json:"pushes"`
	TotalGames int       `json:"totalGames"`
	CreatedAt  time.Time `json:"createdAt"`
}

type loginResponse struct {
	Player  playerResponse `json:"player"`
	Created bool           `json:"created"`
}

type errorResponse struct {
	Code    types.ErrorCode `json:"code"`
	Message string          `json:"message"`
}

func newCards(cards []entities.Card) []cardResponse {
	out := make([]cardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, cardResponse{Rank: c.Rank, Suit: c.Suit, Value: c.Value()})
	}
	return out
}

func newGameResponse(g *entities.GameRecord) gameResponse {
	return gameResponse{
		ID:           g.ID,
		PlayerID:     g.PlayerID,
		PlayerName:   g.PlayerName,
		PlayerCards:  newCards(g.PlayerCards),
		PlayerScore:  g.PlayerScore,
		CrupierCards: newCards(g.DealerCards),
		CrupierScore: g.DealerScore,
		Status:       g.Status,
		Result:       g.Result,
		CreatedAt:    g.CreatedAt,
		FinishedAt:   g.FinishedAt,
	}
}

func newPlayerResponse(p *entities.Player) playerResponse {
	return playerResponse{
		ID:         p.ID,
		Name:       p.Name,
		Wins:       p.Record.Wins,
		Losses:     p.Record.Losses,
		Pushes:     p.Record.Pushes,
		TotalGames: p.Record.TotalGames(),
		CreatedAt:  p.CreatedAt,
	}
}

// statusFor maps an error code to the HTTP status the client sees
func statusFor(code types.ErrorCode) int {
	switch code {
	case types.ErrInvalidArgument, types.ErrInvalidAction, types.ErrInvalidCommand:
		return http.StatusBadRequest
	case types.ErrGameNotFound, types.ErrPlayerNotFound:
		return http.StatusNotFound
	case types.ErrPlayerExists, types.ErrNotPlayerTurn, types.ErrNotCrupierTurn,
		types.ErrGameAlreadyEnded, types.ErrInvalidState:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, code types.ErrorCode, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}
