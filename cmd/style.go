package main

import (
	"fmt"
	"strconv"

	"github.com/luca-patrignani/tens/domain/tens"
	"github.com/pterm/pterm"
)

func statusPanel(g *tens.Game) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	var text string
	switch g.Status() {
	case tens.Won:
		text = pterm.LightGreen("You cleared the board!")
	case tens.Stuck:
		text = pterm.LightRed("No legal group left.")
	default:
		text = "Game in progress."
	}
	text += pterm.Sprintf("\nPlays: %d", g.Ledger.Len())
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightYellow("|GAME OVER|")).WithTitleTopCenter().Sprint(text)}
}

func printState(g *tens.Game, additionalPanel ...pterm.Panel) {
	board := pterm.Panel{Data: pterm.DefaultHeader.WithBackgroundStyle(pterm.BgGreen.ToStyle()).Sprint(printBoardInfo(g.Board))}
	deck := pterm.Panel{Data: printDeckInfo(g)}
	dashboard := []pterm.Panel{deck}
	dashboard = append(dashboard, additionalPanel...)

	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{board},
		dashboard,
	}).Render()
}

func printBoardInfo(b *tens.Board) string {
	board := ""
	for k := 0; k < b.Size(); k++ {
		if k > 0 {
			board += " | "
		}
		c, ok := b.CardAt(k)
		if !ok {
			board += strconv.Itoa(k) + ": --"
			continue
		}
		board += strconv.Itoa(k) + ": " + c.String()
	}
	return board
}

func printDeckInfo(g *tens.Game) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	return pbox.WithTitle("Deck").WithTitleTopLeft().Sprintf("Cards left: %d\nPlays: %d\nRules: %s", g.Board.DeckSize(), g.Ledger.Len(), g.Rules.Variant)
}

func simulationTable(results map[tens.Status]int, games int) pterm.TableData {
	data := pterm.TableData{{"Result", "Games", "Share"}}
	for _, s := range []tens.Status{tens.Won, tens.Stuck} {
		share := 0.0
		if games > 0 {
			share = float64(results[s]) * 100 / float64(games)
		}
		data = append(data, []string{string(s), strconv.Itoa(results[s]), fmt.Sprintf("%.1f%%", share)})
	}
	return data
}
