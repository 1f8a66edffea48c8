package irc

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/EstherBlacksmith/blackjack.V.02/internal/logging"
	"github.com/EstherBlacksmith/blackjack.V.02/internal/types"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/entities"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/services/game"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/services/player"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/services/statistics"
)

const (
	commandPrefix   = "$"
	rankingPerPage  = 5
	defaultCooldown = time.Second
)

// Sender delivers lines to a channel or nick
type Sender interface {
	Privmsg(target, message string)
	Notice(target, message string)
}

// Handler turns chat commands into game service calls. Each nick has at most
// one active game.
type Handler struct {
	games   game.GameService
	players player.PlayerService
	stats   statistics.StatisticsService
	sender  Sender

	mu          sync.Mutex
	active      map[string]string // nick -> game id
	lastCommand map[string]time.Time
	cooldown    time.Duration

	logger *logging.Logger
}

// NewHandler creates a new command handler
func NewHandler(sender Sender, games game.GameService, players player.PlayerService, stats statistics.StatisticsService) *Handler {
	return &Handler{
		games:       games,
		players:     players,
		stats:       stats,
		sender:      sender,
		active:      make(map[string]string),
		lastCommand: make(map[string]time.Time),
		cooldown:    defaultCooldown,
		logger:      logging.Default.With("irc"),
	}
}

// WithCooldown sets the minimum time between two commands from one nick
func (h *Handler) WithCooldown(d time.Duration) *Handler {
	h.cooldown = d
	return h
}

// WithLogger sets the handler logger
func (h *Handler) WithLogger(logger *logging.Logger) *Handler {
	h.logger = logger
	return h
}

// HandleMessage processes one PRIVMSG. target is the channel the message was
// sent to, or the bot's own nick for private messages.
func (h *Handler) HandleMessage(ctx context.Context, nick, target, message string) {
	fields := strings.Fields(message)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], commandPrefix) {
		return
	}
	if !h.rateLimitCheck(nick) {
		return
	}

	replyTo := target
	if !strings.HasPrefix(target, "#") {
		replyTo = nick
	}

	command := strings.ToLower(strings.TrimPrefix(fields[0], commandPrefix))
	args := fields[1:]

	var err error
	switch command {
	case "blackjack", "bj":
		err = h.handleNewGame(ctx, nick, replyTo)
	case "hit":
		err = h.handleHit(ctx, nick, replyTo)
	case "stand":
		err = h.handleStand(ctx, nick, replyTo)
	case "stats":
		err = h.handleStats(ctx, nick, replyTo)
	case "ranking":
		err = h.handleRanking(ctx, replyTo, args)
	case "help":
		h.handleHelp(replyTo)
	default:
		return
	}

	if err != nil {
		h.reportError(nick, err)
	}
}

func (h *Handler) handleNewGame(ctx context.Context, nick, replyTo string) error {
	if id, ok := h.activeGame(nick); ok {
		g, err := h.games.GetGame(ctx, id)
		if err == nil && !g.IsFinished() {
			h.sender.Privmsg(replyTo, fmt.Sprintf("%s: you already have a game going. %s", nick, describeGame(g)))
			return nil
		}
	}

	p, err := h.login(ctx, nick)
	if err != nil {
		return err
	}
	g, err := h.games.NewGame(ctx, p.ID)
	if err != nil {
		return err
	}

	h.track(nick, g)
	h.sender.Privmsg(replyTo, fmt.Sprintf("%s: %s", nick, describeGame(g)))
	return nil
}

func (h *Handler) handleHit(ctx context.Context, nick, replyTo string) error {
	id, err := h.requireGame(nick)
	if err != nil {
		return err
	}
	g, err := h.games.Hit(ctx, id)
	if err != nil {
		return err
	}
	h.track(nick, g)
	h.sender.Privmsg(replyTo, fmt.Sprintf("%s: %s", nick, describeGame(g)))
	return nil
}

// handleStand hands over to the crupier and announces each crupier draw
func (h *Handler) handleStand(ctx context.Context, nick, replyTo string) error {
	id, err := h.requireGame(nick)
	if err != nil {
		return err
	}
	g, err := h.games.Stand(ctx, id)
	if err != nil {
		return err
	}
	h.sender.Privmsg(replyTo, fmt.Sprintf("%s stands on %d. Crupier shows %s (%d).",
		nick, g.PlayerScore, formatCards(g.DealerCards), g.DealerScore))

	for g.Status == entities.StatusCrupierTurn {
		drawn := len(g.DealerCards)
		g, err = h.games.CrupierHit(ctx, id)
		if err != nil {
			return err
		}
		if len(g.DealerCards) > drawn {
			h.sender.Privmsg(replyTo, fmt.Sprintf("Crupier draws %s (%d).",
				formatCards(g.DealerCards[drawn:]), g.DealerScore))
		}
	}

	h.track(nick, g)
	h.sender.Privmsg(replyTo, fmt.Sprintf("%s: %s", nick, describeGame(g)))
	return nil
}

func (h *Handler) handleStats(ctx context.Context, nick, replyTo string) error {
	p, err := h.login(ctx, nick)
	if err != nil {
		return err
	}
	stats, err := h.stats.GetPlayerStats(ctx, p.ID)
	if err != nil {
		return err
	}
	h.sender.Privmsg(replyTo, fmt.Sprintf("%s: %d games, %dW-%dL-%dP, win rate %.1f%%",
		stats.PlayerName, stats.TotalGames, stats.Wins, stats.Losses, stats.Pushes, stats.WinRate))
	return nil
}

func (h *Handler) handleRanking(ctx context.Context, replyTo string, args []string) error {
	page := 1
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return types.NewGameError(types.ErrInvalidArgument, "usage: $ranking [page]")
		}
		page = n
	}

	board, err := h.stats.GetRanking(ctx, page, rankingPerPage)
	if err != nil {
		return err
	}
	if len(board.Players) == 0 {
		h.sender.Privmsg(replyTo, "Nobody has finished a game yet.")
		return nil
	}

	h.sender.Privmsg(replyTo, fmt.Sprintf("Leaderboard page %d/%d:", board.CurrentPage, board.TotalPages))
	for _, r := range board.Players {
		h.sender.Privmsg(replyTo, fmt.Sprintf("%d. %s %dW-%dL-%dP (%.1f%%)",
			r.Rank, r.PlayerName, r.Wins, r.Losses, r.Pushes, r.WinRate))
	}
	return nil
}

func (h *Handler) handleHelp(replyTo string) {
	h.sender.Privmsg(replyTo, "Commands: $blackjack deal a game | $hit draw a card | $stand let the crupier play | $stats your record | $ranking [page] leaderboard")
}

// Helper functions

func (h *Handler) login(ctx context.Context, nick string) (*entities.Player, error) {
	p, created, err := h.players.Login(ctx, nick)
	if err != nil {
		return nil, err
	}
	if created {
		h.logger.Info("Registered player %s", p.Name)
	}
	return p, nil
}

func (h *Handler) activeGame(nick string) (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id, ok := h.active[nick]
	return id, ok
}

func (h *Handler) requireGame(nick string) (string, error) {
	id, ok := h.activeGame(nick)
	if !ok {
		return "", types.NewGameError(types.ErrGameNotFound, "you have no game going, start one with $blackjack")
	}
	return id, nil
}

// track remembers the nick's game until it finishes
func (h *Handler) track(nick string, g *entities.GameRecord) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if g.IsFinished() {
		delete(h.active, nick)
		return
	}
	h.active[nick] = g.ID
}

func (h *Handler) rateLimitCheck(nick string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	lastTime, exists := h.lastCommand[nick]
	if !exists || time.Since(lastTime) >= h.cooldown {
		h.lastCommand[nick] = time.Now()
		return true
	}
	return false
}

// reportError answers privately so failed moves don't flood the channel
func (h *Handler) reportError(nick string, err error) {
	var gameErr *types.GameError
	if types.As(err, &gameErr) {
		switch gameErr.Code {
		case types.ErrInternalError, types.ErrDatabaseError, types.ErrNetworkError:
		default:
			h.sender.Notice(nick, gameErr.Message)
			return
		}
	}
	h.logger.LogError(err)
	h.sender.Notice(nick, "Something went wrong at the table, try again later.")
}

func formatCards(cards []entities.Card) string {
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, " ")
}

func describeGame(g *entities.GameRecord) string {
	hands := fmt.Sprintf("You: %s (%d) | Crupier: %s (%d)",
		formatCards(g.PlayerCards), g.PlayerScore, formatCards(g.DealerCards), g.DealerScore)

	switch g.Status {
	case entities.StatusPlayerTurn:
		return hands + " | $hit or $stand?"
	case entities.StatusCrupierTurn:
		return hands + " | the crupier is playing"
	case entities.StatusFinished:
		return hands + " | " + describeResult(g.Result)
	default:
		return hands
	}
}

func describeResult(result entities.GameResult) string {
	switch result {
	case entities.ResultBlackjack:
		return "Blackjack! You win."
	case entities.ResultPlayerWins:
		return "You win!"
	case entities.ResultCrupierWins:
		return "The crupier wins."
	case entities.ResultPush:
		return "Push."
	default:
		return string(result)
	}
}
