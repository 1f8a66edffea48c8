package discord

import (
	"math/rand"

	"github.com/EstherBlacksmith/blackjack.V.02/pkg/entities"
)

var resultMessages = map[entities.GameResult][]string{
	entities.ResultBlackjack: {
		"🎉 Blackjack! Twenty-one on the deal.",
		"🎉 A natural! The house pays its respects.",
	},
	entities.ResultPlayerWins: {
		"🏆 You win! The crupier slides the chips over.",
		"🏆 Well played, the hand is yours.",
	},
	entities.ResultCrupierWins: {
		"💸 The crupier wins this one.",
		"💸 The house takes the hand.",
	},
	entities.ResultPush: {
		"🤝 Push. Nobody wins, nobody loses.",
		"🤝 A tie, the hand is a push.",
	},
}

// resultMessage describes how a finished game ended
func resultMessage(game *entities.GameRecord) string {
	messages := resultMessages[game.Result]
	if len(messages) == 0 {
		return ""
	}
	msg := messages[rand.Intn(len(messages))]
	switch {
	case game.Result == entities.ResultCrupierWins && game.PlayerScore > 21:
		msg += " You busted."
	case game.Result == entities.ResultPlayerWins && game.DealerScore > 21:
		msg += " The crupier busted."
	}
	return msg
}
