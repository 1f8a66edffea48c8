package irc

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/EstherBlacksmith/blackjack.V.02/internal/logging"
	irc "github.com/thoj/go-ircevent"
)

// Config holds the connection settings
type Config struct {
	Server  string
	Nick    string
	Channel string
	UseTLS  bool
}

// Bot owns the IRC connection and feeds channel messages to a Handler
type Bot struct {
	conn    *irc.Connection
	config  Config
	handler *Handler
	logger  *logging.Logger
}

// NewBot prepares a connection; nothing is dialled until Run
func NewBot(cfg Config) *Bot {
	conn := irc.IRC(cfg.Nick, cfg.Nick)
	conn.UseTLS = cfg.UseTLS
	if cfg.UseTLS {
		conn.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	return &Bot{
		conn:   conn,
		config: cfg,
		logger: logging.Default.With("irc"),
	}
}

// Sender exposes the connection so a Handler can reply through it
func (b *Bot) Sender() Sender {
	return b.conn
}

// Run connects, joins the channel and dispatches commands until ctx is done
func (b *Bot) Run(ctx context.Context, handler *Handler) error {
	b.handler = handler

	b.conn.AddCallback("001", func(e *irc.Event) {
		b.logger.Info("Connected to %s, joining %s", b.config.Server, b.config.Channel)
		b.conn.Join(b.config.Channel)
	})
	b.conn.AddCallback("PRIVMSG", func(e *irc.Event) {
		if len(e.Arguments) == 0 {
			return
		}
		msgCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		b.handler.HandleMessage(msgCtx, e.Nick, e.Arguments[0], e.Message())
	})

	if err := b.conn.Connect(b.config.Server); err != nil {
		return fmt.Errorf("failed to connect to IRC server: %w", err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		b.conn.Loop()
	}()

	select {
	case <-ctx.Done():
		b.conn.Quit()
		<-done
		return nil
	case <-done:
		return fmt.Errorf("IRC connection to %s closed", b.config.Server)
	}
}
