package entities

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/EstherBlacksmith/blackjack.V.02/internal/types"
)

const (
	MinPlayerNameLength = 2
	MaxPlayerNameLength = 50
)

// Player is a registered player profile with persistent counters
type Player struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Record    Record    `json:"record"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NormalizePlayerName trims the name and checks its length
func NormalizePlayerName(name string) (string, error) {
	name = strings.TrimSpace(name)
	n := utf8.RuneCountInString(name)
	if n < MinPlayerNameLength || n > MaxPlayerNameLength {
		return "", types.NewGameError(types.ErrInvalidArgument,
			fmt.Sprintf("player name must be between %d and %d characters", MinPlayerNameLength, MaxPlayerNameLength))
	}
	return name, nil
}
