package blackjack

import (
	"fmt"

	"github.com/EstherBlacksmith/blackjack.V.02/internal/types"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/entities"
	"github.com/google/uuid"
)

// initialDealSize is the number of cards dealt by StartGame
const initialDealSize = 4

// Config describes a new game. Zero fields take defaults: a generated ID and
// a freshly shuffled deck. Player is required.
type Config struct {
	ID     string
	Player *Player
	Deck   *entities.Deck
}

// Game is a single round of blackjack between one player and the dealer.
// A Game is not safe for concurrent use; callers serialize access per game.
type Game struct {
	id     string
	deck   *entities.Deck
	player *Player
	dealer *Dealer
	status entities.GameStatus
	result entities.GameResult
}

// PlayerView is a read-only copy of the player's side of the table
type PlayerView struct {
	ID     string
	Name   string
	Cards  []entities.Card
	Score  int
	Status entities.PlayerStatus
	Record entities.Record
}

// DealerView is a read-only copy of the dealer's side of the table
type DealerView struct {
	Cards []entities.Card
	Score int
}

// NewGame creates a game for the given player with a fresh shuffled deck
func NewGame(playerID, playerName string) *Game {
	g, _ := NewGameWithConfig(Config{Player: NewPlayer(playerID, playerName)})
	return g
}

// NewGameWithConfig creates a game from an explicit configuration
func NewGameWithConfig(cfg Config) (*Game, error) {
	if cfg.Player == nil {
		return nil, types.NewGameError(types.ErrInvalidArgument, "a game needs a player")
	}
	if cfg.ID == "" {
		cfg.ID = uuid.New().String()
	}
	if cfg.Deck == nil {
		cfg.Deck = entities.NewDeck()
	}
	return &Game{
		id:     cfg.ID,
		deck:   cfg.Deck,
		player: cfg.Player,
		dealer: NewDealer(),
		status: entities.StatusCreated,
		result: entities.ResultNone,
	}, nil
}

// StartGame deals two cards each, player first. A player blackjack ends the
// game immediately: PUSH if the dealer also has one, BLACKJACK otherwise.
func (g *Game) StartGame() error {
	if g.status != entities.StatusCreated {
		return types.NewGameError(types.ErrInvalidState,
			fmt.Sprintf("game %s cannot be started while %s", g.id, g.status))
	}
	if g.deck.Size() < initialDealSize {
		return entities.ErrEmptyDeck
	}

	for i := 0; i < initialDealSize; i++ {
		card, err := g.deck.Draw()
		if err != nil {
			return err
		}
		if i%2 == 0 {
			if err := g.player.ReceiveCard(card); err != nil {
				return err
			}
		} else {
			g.dealer.ReceiveCard(card)
		}
	}

	if g.player.HasBlackjack() {
		if g.dealer.HasBlackjack() {
			g.finish(entities.ResultPush)
		} else {
			g.finish(entities.ResultBlackjack)
		}
		return nil
	}

	g.status = entities.StatusPlayerTurn
	return nil
}

// PlayerHit draws one card for the player. A bust ends the game with the
// dealer winning; the dealer does not play.
func (g *Game) PlayerHit() error {
	if err := g.requireStatus(entities.StatusPlayerTurn); err != nil {
		return err
	}
	card, err := g.deck.Draw()
	if err != nil {
		return err
	}
	if err := g.player.ReceiveCard(card); err != nil {
		return err
	}
	if g.player.IsBusted() {
		g.finish(entities.ResultCrupierWins)
	}
	return nil
}

// PlayerStand ends the player's turn and hands the table to the dealer
func (g *Game) PlayerStand() error {
	if err := g.requireStatus(entities.StatusPlayerTurn); err != nil {
		return err
	}
	if err := g.player.Stand(); err != nil {
		return err
	}
	g.status = entities.StatusCrupierTurn
	return nil
}

// PlayerStandAndPlay stands and then runs the whole dealer turn
func (g *Game) PlayerStandAndPlay() error {
	if err := g.PlayerStand(); err != nil {
		return err
	}
	return g.CrupierTurn()
}

// DealerStep advances the dealer by one policy decision. When the dealer must
// hit it draws a card; once the dealer must stand the winner is determined.
// It reports whether another step is needed.
func (g *Game) DealerStep() (bool, error) {
	if err := g.requireStatus(entities.StatusCrupierTurn); err != nil {
		return false, err
	}
	if g.dealer.MustHit() {
		card, err := g.deck.Draw()
		if err != nil {
			return false, err
		}
		g.dealer.ReceiveCard(card)
		if g.dealer.MustHit() {
			return true, nil
		}
	}
	if _, err := g.DetermineWinner(); err != nil {
		return false, err
	}
	return false, nil
}

// CrupierHitOneCard performs a single dealer step, for interactive clients
// that reveal the dealer's draws one at a time
func (g *Game) CrupierHitOneCard() error {
	_, err := g.DealerStep()
	return err
}

// CrupierTurn plays the dealer's hand to completion
func (g *Game) CrupierTurn() error {
	for {
		more, err := g.DealerStep()
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

// DetermineWinner compares the hands, records the result on the player and
// finishes the game. It is only valid during the dealer's turn, so a result
// is applied at most once.
func (g *Game) DetermineWinner() (entities.GameResult, error) {
	if err := g.requireStatus(entities.StatusCrupierTurn); err != nil {
		return entities.ResultNone, err
	}
	result := g.compareHands()
	g.finish(result)
	return result, nil
}

func (g *Game) compareHands() entities.GameResult {
	playerScore, dealerScore := g.player.Score(), g.dealer.Score()
	switch {
	case g.player.IsBusted():
		return entities.ResultCrupierWins
	case g.dealer.IsBusted():
		return entities.ResultPlayerWins
	case playerScore > dealerScore:
		return entities.ResultPlayerWins
	case dealerScore > playerScore:
		return entities.ResultCrupierWins
	default:
		return entities.ResultPush
	}
}

func (g *Game) finish(result entities.GameResult) {
	g.result = result
	g.player.ApplyGameResult(result)
	g.status = entities.StatusFinished
}

func (g *Game) requireStatus(want entities.GameStatus) error {
	if g.status == want {
		return nil
	}
	if want == entities.StatusCrupierTurn {
		return types.NewGameError(types.ErrNotCrupierTurn,
			fmt.Sprintf("it is not the crupier's turn (game is %s)", g.status))
	}
	return types.NewGameError(types.ErrNotPlayerTurn,
		fmt.Sprintf("it is not the player's turn (game is %s)", g.status))
}

// ID returns the game identifier
func (g *Game) ID() string {
	return g.id
}

// Status returns the current position in the turn sequence
func (g *Game) Status() entities.GameStatus {
	return g.status
}

// Result returns the outcome, NO_RESULTS_YET until the game finishes
func (g *Game) Result() entities.GameResult {
	return g.result
}

// IsFinished reports whether the game has ended
func (g *Game) IsFinished() bool {
	return g.status == entities.StatusFinished
}

// DeckSize returns the number of undealt cards
func (g *Game) DeckSize() int {
	return g.deck.Size()
}

// Player returns a snapshot of the player's side of the table
func (g *Game) Player() PlayerView {
	return PlayerView{
		ID:     g.player.ID(),
		Name:   g.player.Name(),
		Cards:  g.player.Cards(),
		Score:  g.player.Score(),
		Status: g.player.Status(),
		Record: g.player.Record(),
	}
}

// Dealer returns a snapshot of the dealer's side of the table
func (g *Game) Dealer() DealerView {
	return DealerView{
		Cards: g.dealer.Cards(),
		Score: g.dealer.Score(),
	}
}

// Snapshot returns the persistable state of the game. Timestamps are left for
// the caller to fill.
func (g *Game) Snapshot() *entities.GameRecord {
	return &entities.GameRecord{
		ID:          g.id,
		PlayerID:    g.player.ID(),
		PlayerName:  g.player.Name(),
		PlayerCards: g.player.Cards(),
		PlayerScore: g.player.Score(),
		DealerCards: g.dealer.Cards(),
		DealerScore: g.dealer.Score(),
		Status:      g.status,
		Result:      g.result,
	}
}
