package game

import (
	"context"
	"time"

	"github.com/EstherBlacksmith/blackjack.V.02/internal/logging"
	"github.com/EstherBlacksmith/blackjack.V.02/internal/utils"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/entities"
	gameRepo "github.com/EstherBlacksmith/blackjack.V.02/pkg/repositories/game"
	playerRepo "github.com/EstherBlacksmith/blackjack.V.02/pkg/repositories/player"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/services/blackjack"
)

// Service loads a game, applies one action through the rules engine and saves
// the result. Calls for the same game id are serialized.
type Service struct {
	games    gameRepo.Repository
	players  playerRepo.Repository
	recorder ResultRecorder
	newDeck  func() *entities.Deck
	shuffler entities.Shuffler
	now      func() time.Time
	locks    *utils.KeyedMutex
	logger   *logging.Logger
}

var _ GameService = (*Service)(nil)

// Option configures a Service
type Option func(*Service)

// WithResultRecorder sets who is told about finished games
func WithResultRecorder(r ResultRecorder) Option {
	return func(s *Service) { s.recorder = r }
}

// WithDeckFactory sets how decks for new games are built
func WithDeckFactory(f func() *entities.Deck) Option {
	return func(s *Service) { s.newDeck = f }
}

// WithShuffler sets the shuffler used when a saved game is rebuilt
func WithShuffler(sh entities.Shuffler) Option {
	return func(s *Service) { s.shuffler = sh }
}

// WithClock overrides time.Now
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLogger sets the service logger
func WithLogger(l *logging.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// NewService creates a new game service
func NewService(games gameRepo.Repository, players playerRepo.Repository, opts ...Option) *Service {
	s := &Service{
		games:   games,
		players: players,
		newDeck: entities.NewDeck,
		now:     func() time.Time { return time.Now().UTC() },
		locks:   utils.NewKeyedMutex(),
		logger:  logging.Default.With("game-service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewGame deals a new game for an existing player
func (s *Service) NewGame(ctx context.Context, playerID string) (*entities.GameRecord, error) {
	p, err := s.players.FindByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	g, err := blackjack.NewGameWithConfig(blackjack.Config{
		Player: blackjack.NewPlayerWithRecord(p.ID, p.Name, p.Record),
		Deck:   s.newDeck(),
	})
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(g.ID())
	defer unlock()

	if err := g.StartGame(); err != nil {
		return nil, err
	}

	now := s.now()
	rec := g.Snapshot()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	if g.IsFinished() {
		rec.FinishedAt = &now
	}

	if err := s.games.Save(ctx, rec); err != nil {
		return nil, err
	}
	s.logger.Info("Game %s started for player %s (%s)", rec.ID, p.Name, rec.Status)

	if g.IsFinished() {
		s.recordResult(ctx, rec)
	}
	return rec, nil
}

// GetGame returns the stored game
func (s *Service) GetGame(ctx context.Context, id string) (*entities.GameRecord, error) {
	return s.games.FindByID(ctx, id)
}

// Hit draws a card for the player
func (s *Service) Hit(ctx context.Context, id string) (*entities.GameRecord, error) {
	return s.act(ctx, id, "hit", (*blackjack.Game).PlayerHit)
}

// Stand ends the player's turn and hands over to the crupier
func (s *Service) Stand(ctx context.Context, id string) (*entities.GameRecord, error) {
	return s.act(ctx, id, "stand", (*blackjack.Game).PlayerStand)
}

// StandAndPlay stands and plays the crupier's whole turn
func (s *Service) StandAndPlay(ctx context.Context, id string) (*entities.GameRecord, error) {
	return s.act(ctx, id, "stand-and-play", (*blackjack.Game).PlayerStandAndPlay)
}

// CrupierHit advances the crupier by a single step
func (s *Service) CrupierHit(ctx context.Context, id string) (*entities.GameRecord, error) {
	return s.act(ctx, id, "crupier-hit", (*blackjack.Game).CrupierHitOneCard)
}

// DeleteGame removes a game
func (s *Service) DeleteGame(ctx context.Context, id string) error {
	unlock := s.locks.Lock(id)
	defer unlock()

	if err := s.games.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Game %s deleted", id)
	return nil
}

// act runs one engine action against the saved game. Nothing is written when
// the action fails, so a rejected move leaves the stored game untouched.
func (s *Service) act(ctx context.Context, id, action string, fn func(*blackjack.Game) error) (*entities.GameRecord, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	stored, err := s.games.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	g, err := blackjack.FromRecord(stored, s.shuffler)
	if err != nil {
		return nil, err
	}
	wasFinished := g.IsFinished()

	if err := fn(g); err != nil {
		s.logger.Debug("Game %s rejected %s: %v", id, action, err)
		return nil, err
	}

	now := s.now()
	rec := g.Snapshot()
	rec.CreatedAt = stored.CreatedAt
	rec.UpdatedAt = now
	rec.FinishedAt = stored.FinishedAt
	justFinished := g.IsFinished() && !wasFinished
	if justFinished {
		rec.FinishedAt = &now
	}

	if err := s.games.Save(ctx, rec); err != nil {
		return nil, err
	}
	s.logger.Debug("Game %s %s: player %d, crupier %d, %s", id, action, rec.PlayerScore, rec.DealerScore, rec.Status)

	if justFinished {
		s.recordResult(ctx, rec)
	}
	return rec, nil
}

// recordResult reports a finished game. The game is already saved, so a
// failure here is logged rather than returned.
func (s *Service) recordResult(ctx context.Context, rec *entities.GameRecord) {
	s.logger.Info("Game %s finished: %s", rec.ID, rec.Result)
	if s.recorder == nil {
		return
	}
	if err := s.recorder.RecordResult(ctx, rec.PlayerID, rec.Result); err != nil {
		s.logger.LogError(err)
	}
}
