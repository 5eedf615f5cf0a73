package tens

import (
	"crypto/cipher"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/luca-patrignani/tens/ledger"
)

// ErrIllegalGroup is returned by Play when the selected cards cannot be removed.
var ErrIllegalGroup = errors.New("selected cards are not a legal group")

// Status is the state of a game after the last play.
type Status string

const (
	InProgress Status = "in progress"
	Won        Status = "won"
	Stuck      Status = "stuck"
)

// Play is the record of one removal, as stored in the ledger.
type Play struct {
	Slots []int    `json:"slots"`
	Cards []string `json:"cards"`
}

// Game drives a single game of Tens: it owns the board, applies the rules to
// the player's selections and records every removal.
type Game struct {
	ID     string
	Board  *Board
	Rules  Rules
	Ledger *ledger.Ledger
	logger *slog.Logger
}

// NewGame deals a new game. A nil logger falls back to slog.Default().
func NewGame(id string, rules Rules, rand cipher.Stream, logger *slog.Logger) (*Game, error) {
	if logger == nil {
		logger = slog.Default()
	}
	board := NewBoard()
	if err := board.NewGame(rand); err != nil {
		return nil, err
	}
	g := &Game{
		ID:     id,
		Board:  board,
		Rules:  rules,
		Ledger: ledger.New(id),
		logger: logger.With("game", id),
	}
	g.logger.Debug("dealt board", "board", board.String(), "variant", rules.Variant)
	return g, nil
}

// Play removes the selected cards and refills their slots. It returns an
// error wrapping ErrIllegalGroup if the selection is not removable, or one
// of the CheckSelection errors if it does not name distinct occupied slots.
func (g *Game) Play(selection []int) error {
	if err := CheckSelection(g.Board, selection); err != nil {
		return err
	}
	if !g.Rules.IsLegal(g.Board, selection) {
		return fmt.Errorf("%s: %w", g.describe(selection), ErrIllegalGroup)
	}
	play := Play{Slots: append([]int(nil), selection...)}
	for _, k := range selection {
		c, _ := g.Board.CardAt(k)
		play.Cards = append(play.Cards, c.Code())
	}
	if err := g.Board.ReplaceSelected(selection); err != nil {
		return err
	}
	if _, err := g.Ledger.Append(play); err != nil {
		return fmt.Errorf("record play: %w", err)
	}
	g.logger.Debug("removed cards", "slots", play.Slots, "cards", play.Cards, "deck", g.Board.DeckSize())
	return nil
}

// Status reports whether the game is won, stuck or still going.
func (g *Game) Status() Status {
	if g.Board.IsEmpty() && g.Board.DeckSize() == 0 {
		return Won
	}
	if !g.Rules.AnotherPlayIsPossible(g.Board) {
		return Stuck
	}
	return InProgress
}

// Hint returns a legal group on the current board, or nil.
func (g *Game) Hint() []int {
	return g.Rules.Hint(g.Board)
}

// AutoPlay keeps removing the first legal group until the game is over and
// returns the final status once the recorded plays check out. With the Legacy
// rules the board may claim a play exists while no group is accepted; the
// game is then reported stuck.
func (g *Game) AutoPlay() (Status, error) {
	for {
		status := g.Status()
		if status != InProgress {
			return status, g.Ledger.Verify()
		}
		hint := g.Hint()
		if hint == nil {
			g.logger.Warn("a play was reported but no legal group exists", "board", g.Board.String())
			return Stuck, g.Ledger.Verify()
		}
		if err := g.Play(hint); err != nil {
			return status, err
		}
	}
}

func (g *Game) describe(selection []int) string {
	cards := make([]string, 0, len(selection))
	for _, k := range selection {
		c, _ := g.Board.CardAt(k)
		cards = append(cards, c.Code())
	}
	return strings.Join(cards, " ")
}
