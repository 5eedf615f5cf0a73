package main

import (
	"crypto/cipher"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/tens/config"
	"github.com/luca-patrignani/tens/domain/deck"
	"github.com/luca-patrignani/tens/domain/tens"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// Create a new slog handler with the default PTerm logger
	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(ptermLevel(cfg.LogLevel)))

	// Create a new slog logger with the handler
	logger := slog.New(handler)

	command := "play"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}
	switch command {
	case "play":
		banner()
		if err := play(cfg, logger); err != nil {
			logger.Error("game aborted", "error", err)
			os.Exit(1)
		}
	case "simulate":
		games := cfg.Games
		if len(os.Args) > 2 {
			games, err = strconv.Atoi(os.Args[2])
			if err != nil || games <= 0 {
				fmt.Fprintf(os.Stderr, "invalid number of games %q\n", os.Args[2])
				os.Exit(1)
			}
		}
		spinner, _ := pterm.DefaultSpinner.Start(fmt.Sprintf("Playing %d games ...", games))
		results, err := simulate(cfg, games, logger)
		if err != nil {
			spinner.Fail()
			logger.Error("simulation failed", "error", err)
			os.Exit(1)
		}
		spinner.Success()
		pterm.DefaultTable.WithHasHeader().WithData(simulationTable(results, games)).Render()
	default:
		fmt.Fprintf(os.Stderr, "usage: %s [play | simulate [games]]\n", os.Args[0])
		os.Exit(1)
	}
}

func banner() {
	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("T", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("ens", pterm.FgDarkGray.ToStyle()),
	).Render()
}

func play(cfg config.Config, logger *slog.Logger) error {
	g, err := tens.NewGame("game-0", cfg.Rules, streamFor(cfg.Seed, 0), logger)
	if err != nil {
		return err
	}
	pterm.Info.Printfln("Rules: %s", cfg.Rules.Variant)
	for g.Status() == tens.InProgress {
		printState(g)
		input, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("Select the slots or cards to remove (e.g. 0 4 or 3H 7S), 'hint' or 'quit'").Show()
		pterm.Println()
		switch strings.ToLower(strings.TrimSpace(input)) {
		case "quit":
			pterm.Info.Println("Game abandoned.")
			return nil
		case "hint":
			pterm.Info.Printfln("Try slots %v", g.Hint())
			continue
		}
		selection, err := parseSelection(input, g.Board)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if err := g.Play(selection); err != nil {
			pterm.Warning.Printfln("Not removed: %s", err.Error())
			continue
		}
	}
	printState(g, statusPanel(g))
	if err := g.Ledger.Verify(); err != nil {
		return fmt.Errorf("game record: %w", err)
	}
	pterm.Success.Printfln("%d plays recorded", g.Ledger.Len())
	return nil
}

// simulate plays games automatically and counts how each one ended.
func simulate(cfg config.Config, games int, logger *slog.Logger) (map[tens.Status]int, error) {
	results := make(map[tens.Status]int)
	for i := 0; i < games; i++ {
		g, err := tens.NewGame(fmt.Sprintf("game-%d", i), cfg.Rules, streamFor(cfg.Seed, i), logger)
		if err != nil {
			return nil, err
		}
		status, err := g.AutoPlay()
		if err != nil {
			return nil, fmt.Errorf("game %d: %w", i, err)
		}
		logger.Debug("game over", "game", g.ID, "status", status, "plays", g.Ledger.Len())
		results[status]++
	}
	return results, nil
}

// streamFor returns the shuffle source of the given game: random when seed
// is empty, otherwise derived from seed and the game number.
func streamFor(seed string, game int) cipher.Stream {
	if seed == "" {
		return deck.RandomStream()
	}
	return deck.SeededStream([]byte(fmt.Sprintf("%s/%d", seed, game)))
}

// parseSelection reads slot indexes or card names separated by spaces or
// commas. Card names are looked up on board.
func parseSelection(input string, board *tens.Board) ([]int, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("no slot selected")
	}
	selection := make([]int, 0, len(fields))
	for _, f := range fields {
		if k, err := strconv.Atoi(f); err == nil {
			selection = append(selection, k)
			continue
		}
		c, err := tens.ParseCard(f)
		if err != nil {
			return nil, fmt.Errorf("invalid slot %q", f)
		}
		k, ok := board.IndexOf(c)
		if !ok {
			return nil, fmt.Errorf("%s is not on the board", c.Code())
		}
		selection = append(selection, k)
	}
	return selection, nil
}

func ptermLevel(level slog.Level) pterm.LogLevel {
	switch {
	case level <= slog.LevelDebug:
		return pterm.LogLevelDebug
	case level <= slog.LevelInfo:
		return pterm.LogLevelInfo
	case level <= slog.LevelWarn:
		return pterm.LogLevelWarn
	default:
		return pterm.LogLevelError
	}
}
