package player

import (
	"context"
	"time"

	"github.com/EstherBlacksmith/blackjack.V.02/internal/logging"
	"github.com/EstherBlacksmith/blackjack.V.02/internal/types"
	"github.com/EstherBlacksmith/blackjack.V.02/internal/utils"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/entities"
	playerRepo "github.com/EstherBlacksmith/blackjack.V.02/pkg/repositories/player"
	"github.com/google/uuid"
)

// Service handles player business logic
type Service struct {
	repo   playerRepo.Repository
	locks  *utils.KeyedMutex
	now    func() time.Time
	logger *logging.Logger
}

var _ PlayerService = (*Service)(nil)

// NewService creates a new player service
func NewService(repo playerRepo.Repository) *Service {
	return &Service{
		repo:   repo,
		locks:  utils.NewKeyedMutex(),
		now:    func() time.Time { return time.Now().UTC() },
		logger: logging.Default.With("player-service"),
	}
}

// WithLogger replaces the service logger
func (s *Service) WithLogger(l *logging.Logger) *Service {
	s.logger = l
	return s
}

// CreatePlayer registers a new player under a unique name
func (s *Service) CreatePlayer(ctx context.Context, name string) (*entities.Player, error) {
	name, err := entities.NormalizePlayerName(name)
	if err != nil {
		return nil, err
	}

	now := s.now()
	p := &entities.Player{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info("Player %s registered as %s", p.Name, p.ID)
	return p, nil
}

// Login returns the player with this name, creating it on first use. The
// boolean reports whether the player was created.
func (s *Service) Login(ctx context.Context, name string) (*entities.Player, bool, error) {
	name, err := entities.NormalizePlayerName(name)
	if err != nil {
		return nil, false, err
	}

	unlock := s.locks.Lock("name:" + name)
	defer unlock()

	p, err := s.repo.FindByName(ctx, name)
	if err == nil {
		return p, false, nil
	}
	if !types.IsGameError(err, types.ErrPlayerNotFound) {
		return nil, false, err
	}

	p, err = s.CreatePlayer(ctx, name)
	if types.IsGameError(err, types.ErrPlayerExists) {
		// another process created it between the lookup and the insert
		p, err = s.repo.FindByName(ctx, name)
		return p, false, err
	}
	if err != nil {
		return nil, false, err
	}
	return p, true, nil
}

// GetPlayer returns a player by id
func (s *Service) GetPlayer(ctx context.Context, id string) (*entities.Player, error) {
	return s.repo.FindByID(ctx, id)
}

// DeletePlayer removes a player. Their game history is kept.
func (s *Service) DeletePlayer(ctx context.Context, id string) error {
	unlock := s.locks.Lock(id)
	defer unlock()

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Player %s deleted", id)
	return nil
}

// RecordResult adds a finished game's result to the player's counters
func (s *Service) RecordResult(ctx context.Context, playerID string, result entities.GameResult) error {
	if !result.Valid() || result == entities.ResultNone {
		return types.NewGameError(types.ErrInvalidArgument, "only a final result can be recorded: "+string(result))
	}

	unlock := s.locks.Lock(playerID)
	defer unlock()

	p, err := s.repo.FindByID(ctx, playerID)
	if err != nil {
		return err
	}

	record := p.Record
	record.Apply(result)
	if err := s.repo.UpdateStats(ctx, playerID, record); err != nil {
		return err
	}

	s.logger.Debug("Player %s record now %d/%d/%d", p.Name, record.Wins, record.Losses, record.Pushes)
	return nil
}
