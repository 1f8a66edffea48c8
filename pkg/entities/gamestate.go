package entities

// GameStatus is the position of a game in its turn sequence. Statuses only
// move forward: CREATED, PLAYER_TURN, CRUPIER_TURN, FINISHED.
type GameStatus string

const (
	StatusCreated     GameStatus = "CREATED"
	StatusPlayerTurn  GameStatus = "PLAYER_TURN"
	StatusCrupierTurn GameStatus = "CRUPIER_TURN"
	StatusFinished    GameStatus = "FINISHED"
)

// Valid reports whether s is a known status
func (s GameStatus) Valid() bool {
	switch s {
	case StatusCreated, StatusPlayerTurn, StatusCrupierTurn, StatusFinished:
		return true
	}
	return false
}

// GameResult is the outcome of a game. It is set once, when the game finishes.
type GameResult string

const (
	ResultNone        GameResult = "NO_RESULTS_YET"
	ResultPlayerWins  GameResult = "PLAYER_WINS"
	ResultCrupierWins GameResult = "CRUPIER_WINS"
	ResultPush        GameResult = "PUSH"
	ResultBlackjack   GameResult = "BLACKJACK"
)

// Valid reports whether r is a known result
func (r GameResult) Valid() bool {
	switch r {
	case ResultNone, ResultPlayerWins, ResultCrupierWins, ResultPush, ResultBlackjack:
		return true
	}
	return false
}

// IsWin returns true if this result counts as a player win
func (r GameResult) IsWin() bool {
	return r == ResultPlayerWins || r == ResultBlackjack
}

// String returns the string representation of the result
func (r GameResult) String() string {
	return string(r)
}

// PlayerStatus tracks what a player may still do with their hand
type PlayerStatus string

const (
	PlayerActive    PlayerStatus = "ACTIVE"
	PlayerStood     PlayerStatus = "STOOD"
	PlayerBusted    PlayerStatus = "BUSTED"
	PlayerBlackjack PlayerStatus = "BLACKJACK"
)

// Record holds a player's cumulative win/loss/push counters
type Record struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Pushes int `json:"pushes"`
}

// Apply counts one finished game. NO_RESULTS_YET is ignored.
func (r *Record) Apply(result GameResult) {
	switch result {
	case ResultPlayerWins, ResultBlackjack:
		r.Wins++
	case ResultCrupierWins:
		r.Losses++
	case ResultPush:
		r.Pushes++
	}
}

// TotalGames returns the number of games counted
func (r Record) TotalGames() int {
	return r.Wins + r.Losses + r.Pushes
}

// WinRate returns wins as a percentage of all games
func (r Record) WinRate() float64 {
	total := r.TotalGames()
	if total == 0 {
		return 0.0
	}
	return float64(r.Wins) / float64(total) * 100.0
}
