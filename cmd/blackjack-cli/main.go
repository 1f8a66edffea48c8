package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/EstherBlacksmith/blackjack.V.02/internal/app"
	"github.com/EstherBlacksmith/blackjack.V.02/internal/config"
	"github.com/EstherBlacksmith/blackjack.V.02/internal/logging"
	"github.com/EstherBlacksmith/blackjack.V.02/pkg/entities"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const crupierDelay = 700 * time.Millisecond

func main() {
	logger := pterm.DefaultLogger.WithLevel(pterm.LogLevelInfo)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", logger.Args("error", err))
	}
	// Service logs would tear the interactive prompts
	if cfg.LogLevel < logging.ERROR {
		cfg.LogLevel = logging.ERROR
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to start", logger.Args("error", err))
	}
	defer a.Close()
	a.Start(ctx)

	title, _ := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Black", pterm.FgLightWhite.ToStyle()),
		putils.LettersFromStringWithStyle("jack", pterm.FgRed.ToStyle()),
	).Srender()
	pterm.Print(title)

	name, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("Enter your name").Show()
	player, created, err := a.Players.Login(ctx, strings.TrimSpace(name))
	if err != nil {
		logger.Error("Could not sign in", logger.Args("error", err))
		os.Exit(1)
	}
	if created {
		pterm.Success.Printfln("Welcome to the table, %s!", player.Name)
	} else {
		pterm.Info.Printfln("Welcome back, %s (%dW-%dL-%dP)", player.Name, player.Record.Wins, player.Record.Losses, player.Record.Pushes)
	}

	for ctx.Err() == nil {
		if err := playRound(ctx, a, player.ID); err != nil {
			logger.Error("Round aborted", logger.Args("error", err))
		}

		choice, _ := pterm.DefaultInteractiveSelect.
			WithOptions([]string{"Play again", "Show stats", "Quit"}).
			Show("What next?")
		switch choice {
		case "Show stats":
			stats, err := a.Stats.GetPlayerStats(ctx, player.ID)
			if err != nil {
				logger.Error("Could not load stats", logger.Args("error", err))
				continue
			}
			printStats(stats)
		case "Quit":
			pterm.Info.Println("See you next time.")
			return
		}
	}
}

// playRound deals one game and drives it to the end
func playRound(ctx context.Context, a *app.App, playerID string) error {
	g, err := a.Games.NewGame(ctx, playerID)
	if err != nil {
		return err
	}
	printTable(g)

	for g.Status == entities.StatusPlayerTurn {
		action, _ := pterm.DefaultInteractiveSelect.WithOptions([]string{"Hit", "Stand"}).Show("Your move")
		if action == "Hit" {
			g, err = a.Games.Hit(ctx, g.ID)
		} else {
			g, err = a.Games.Stand(ctx, g.ID)
		}
		if err != nil {
			return err
		}
		printTable(g)
	}

	if g.Status == entities.StatusCrupierTurn {
		spinner, _ := pterm.DefaultSpinner.Start("The crupier plays...")
		for g.Status == entities.StatusCrupierTurn {
			time.Sleep(crupierDelay)
			g, err = a.Games.CrupierHit(ctx, g.ID)
			if err != nil {
				_ = spinner.Stop()
				return err
			}
			spinner.UpdateText("The crupier has " + handString(g.DealerCards))
		}
		_ = spinner.Stop()
		printTable(g)
	}

	printResult(g)
	return nil
}
