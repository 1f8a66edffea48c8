package main

import (
	"fmt"
	"strings"

	"github.com/EstherBlacksmith/blackjack.V.02/pkg/entities"
	"github.com/pterm/pterm"
)

func cardString(c entities.Card) string {
	s := c.String()
	if c.Suit == entities.Hearts || c.Suit == entities.Diamonds {
		return pterm.LightRed(s)
	}
	return pterm.LightWhite(s)
}

func handString(cards []entities.Card) string {
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		parts = append(parts, cardString(c))
	}
	return strings.Join(parts, "  ")
}

func handPanel(title string, cards []entities.Card, score int) pterm.Panel {
	box := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	return pterm.Panel{Data: box.WithTitle(pterm.LightYellow("|"+title+"|")).WithTitleTopCenter().
		Sprintf("%s\n\nScore: %d", handString(cards), score)}
}

// printTable shows both hands side by side
func printTable(g *entities.GameRecord) {
	_ = pterm.DefaultPanel.WithPanels([][]pterm.Panel{{
		handPanel("CRUPIER", g.DealerCards, g.DealerScore),
		handPanel(strings.ToUpper(g.PlayerName), g.PlayerCards, g.PlayerScore),
	}}).Render()
}

func resultText(r entities.GameResult) string {
	switch r {
	case entities.ResultBlackjack:
		return "BLACKJACK! You win."
	case entities.ResultPlayerWins:
		return "You win!"
	case entities.ResultCrupierWins:
		return "The crupier wins."
	case entities.ResultPush:
		return "Push. Nobody wins."
	default:
		return string(r)
	}
}

func printResult(g *entities.GameRecord) {
	title := pterm.LightGreen("|RESULT|")
	if g.Result == entities.ResultCrupierWins {
		title = pterm.LightRed("|RESULT|")
	}
	pterm.DefaultBox.WithHorizontalPadding(4).WithTitle(title).WithTitleTopCenter().
		Println(fmt.Sprintf("%s\nYou %d - Crupier %d", resultText(g.Result), g.PlayerScore, g.DealerScore))
}

func printStats(stats *entities.PlayerStatistics) {
	pterm.DefaultSection.Printfln("Stats for %s", stats.PlayerName)
	data := pterm.TableData{
		{"Games", "Wins", "Losses", "Pushes", "Win rate"},
		{
			fmt.Sprint(stats.TotalGames), fmt.Sprint(stats.Wins), fmt.Sprint(stats.Losses),
			fmt.Sprint(stats.Pushes), fmt.Sprintf("%.1f%%", stats.WinRate),
		},
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()

	if len(stats.RecentGames) == 0 {
		return
	}
	history := pterm.TableData{{"Played", "Result", "You", "Crupier"}}
	for _, g := range stats.RecentGames {
		history = append(history, []string{
			g.PlayedAt.Local().Format("2006-01-02 15:04"), string(g.Result),
			fmt.Sprint(g.PlayerScore), fmt.Sprint(g.DealerScore),
		})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(history).Render()
}
