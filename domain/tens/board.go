package tens

import (
	"crypto/cipher"
	"errors"
	"fmt"
	"strings"

	"github.com/luca-patrignani/tens/domain/deck"
)

// BoardSize is the number of slots on a Tens board.
const BoardSize = 13

// BoardView is the read-only part of a board the rules need.
type BoardView interface {
	// Size returns the number of slots, occupied or not.
	Size() int
	// OccupiedIndexes returns the indexes of the slots holding a card, ascending.
	OccupiedIndexes() []int
	// CardAt returns the card at slot k and whether the slot is occupied.
	CardAt(k int) (Card, bool)
}

// Board is a row of BoardSize face-up slots fed by a TensDeck.
type Board struct {
	slots []*Card
	deck  TensDeck
}

func NewBoard() *Board {
	return &Board{
		slots: make([]*Card, BoardSize),
		deck:  NewTensDeck(),
	}
}

// NewGame shuffles the deck with rand and deals a fresh board.
func (b *Board) NewGame(rand cipher.Stream) error {
	if err := b.deck.Shuffle(rand); err != nil {
		return fmt.Errorf("shuffle: %w", err)
	}
	for k := range b.slots {
		b.slots[k] = nil
	}
	return b.deal(b.allIndexes())
}

// Size returns the number of slots on the board.
func (b *Board) Size() int {
	return len(b.slots)
}

// CardAt returns the card in slot k. The second result is false when the
// slot is empty or k is not a slot of this board.
func (b *Board) CardAt(k int) (Card, bool) {
	if k < 0 || k >= len(b.slots) || b.slots[k] == nil {
		return Card{}, false
	}
	return *b.slots[k], true
}

// OccupiedIndexes returns the indexes of the non-empty slots.
func (b *Board) OccupiedIndexes() []int {
	indexes := make([]int, 0, len(b.slots))
	for k, c := range b.slots {
		if c != nil {
			indexes = append(indexes, k)
		}
	}
	return indexes
}

// IndexOf returns the slot holding c.
func (b *Board) IndexOf(c Card) (int, bool) {
	for k, slot := range b.slots {
		if slot != nil && *slot == c {
			return k, true
		}
	}
	return -1, false
}

// ReplaceSelected removes the cards in selection and refills those slots
// from the deck. Slots stay empty once the deck runs out.
func (b *Board) ReplaceSelected(selection []int) error {
	for _, k := range selection {
		if k < 0 || k >= len(b.slots) {
			return fmt.Errorf("slot %d: %w", k, ErrIndexOutOfRange)
		}
	}
	for _, k := range selection {
		b.slots[k] = nil
	}
	return b.deal(selection)
}

// IsEmpty reports whether every slot is empty.
func (b *Board) IsEmpty() bool {
	for _, c := range b.slots {
		if c != nil {
			return false
		}
	}
	return true
}

// DeckSize returns the number of undealt cards.
func (b *Board) DeckSize() int {
	return b.deck.Remaining()
}

func (b *Board) String() string {
	var sb strings.Builder
	for k, c := range b.slots {
		if k > 0 {
			sb.WriteString(" ")
		}
		if c == nil {
			fmt.Fprintf(&sb, "%d:--", k)
			continue
		}
		fmt.Fprintf(&sb, "%d:%s", k, c.Code())
	}
	return sb.String()
}

func (b *Board) deal(indexes []int) error {
	for _, k := range indexes {
		c, err := b.deck.DrawCard()
		if errors.Is(err, deck.ErrDeckEmpty) {
			return nil
		}
		if err != nil {
			return err
		}
		b.slots[k] = &c
	}
	return nil
}

func (b *Board) allIndexes() []int {
	indexes := make([]int, len(b.slots))
	for k := range indexes {
		indexes[k] = k
	}
	return indexes
}
