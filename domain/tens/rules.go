package tens

import (
	"errors"
	"fmt"
)

var (
	ErrIndexOutOfRange = errors.New("slot index out of range")
	ErrDuplicateIndex  = errors.New("slot selected twice")
	ErrEmptySlot       = errors.New("slot is empty")
)

// Variant selects which reading of the Tens rules a Rules value applies.
type Variant string

const (
	// Standard removes pairs summing to ten and four jacks, queens, kings or tens.
	Standard Variant = "standard"
	// Legacy behaves like the first published board: a four-card selection
	// is only ever checked for jacks, and a four-of-a-rank match needs a
	// single card of that rank.
	Legacy Variant = "legacy"
)

// ParseVariant maps a configuration string to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(s); v {
	case Standard, Legacy:
		return v, nil
	case "":
		return Standard, nil
	default:
		return "", fmt.Errorf("unknown rules variant %q", s)
	}
}

// Rules decides which groups of cards may be removed from a board.
// The zero value applies the Standard variant.
type Rules struct {
	Variant Variant
}

// IsLegal reports whether the cards at the selected slots form a group that
// can be removed: two cards whose point values add up to 10, or four jacks,
// queens, kings or tens. IsLegal panics if selection breaks the contract
// checked by CheckSelection.
func (r Rules) IsLegal(view BoardView, selection []int) bool {
	if err := CheckSelection(view, selection); err != nil {
		panic(err)
	}
	if r.Variant == Legacy {
		return r.isLegalLegacy(view, selection)
	}
	switch len(selection) {
	case 2:
		return containsPairSum10(view, selection)
	case 4:
		return r.containsFourJacks(view, selection) ||
			r.containsFourQueens(view, selection) ||
			r.containsFourKings(view, selection) ||
			r.containsFourTens(view, selection)
	default:
		return false
	}
}

func (r Rules) isLegalLegacy(view BoardView, selection []int) bool {
	switch len(selection) {
	case 2:
		return containsPairSum10(view, selection)
	case 4:
		return r.containsFourJacks(view, selection)
	default:
		return false
	}
}

// AnotherPlayIsPossible reports whether any legal group is left among the
// occupied slots of view.
func (r Rules) AnotherPlayIsPossible(view BoardView) bool {
	indexes := view.OccupiedIndexes()
	return containsPairSum10(view, indexes) ||
		r.containsFourJacks(view, indexes) ||
		r.containsFourQueens(view, indexes) ||
		r.containsFourKings(view, indexes) ||
		r.containsFourTens(view, indexes)
}

// IsLegal applies the Standard rules to selection.
func IsLegal(view BoardView, selection []int) bool {
	return Rules{}.IsLegal(view, selection)
}

// AnotherPlayIsPossible applies the Standard rules to the whole board.
func AnotherPlayIsPossible(view BoardView) bool {
	return Rules{}.AnotherPlayIsPossible(view)
}

// CheckSelection verifies that every index of selection is a distinct,
// occupied slot of view.
func CheckSelection(view BoardView, selection []int) error {
	seen := make(map[int]bool, len(selection))
	for _, k := range selection {
		if k < 0 || k >= view.Size() {
			return fmt.Errorf("slot %d: %w", k, ErrIndexOutOfRange)
		}
		if seen[k] {
			return fmt.Errorf("slot %d: %w", k, ErrDuplicateIndex)
		}
		seen[k] = true
		if _, ok := view.CardAt(k); !ok {
			return fmt.Errorf("slot %d: %w", k, ErrEmptySlot)
		}
	}
	return nil
}

// containsPairSum10 reports whether two of the cards at indexes have point
// values adding up to 10.
func containsPairSum10(view BoardView, indexes []int) bool {
	for i := 0; i < len(indexes); i++ {
		c1 := cardAt(view, indexes[i])
		for j := i + 1; j < len(indexes); j++ {
			c2 := cardAt(view, indexes[j])
			if c1.PointValue()+c2.PointValue() == 10 {
				return true
			}
		}
	}
	return false
}

func (r Rules) containsFourJacks(view BoardView, indexes []int) bool {
	return r.containsFourOfRank(view, indexes, Jack)
}

func (r Rules) containsFourQueens(view BoardView, indexes []int) bool {
	return r.containsFourOfRank(view, indexes, Queen)
}

func (r Rules) containsFourKings(view BoardView, indexes []int) bool {
	return r.containsFourOfRank(view, indexes, King)
}

func (r Rules) containsFourTens(view BoardView, indexes []int) bool {
	return r.containsFourOfRank(view, indexes, Ten)
}

func (r Rules) containsFourOfRank(view BoardView, indexes []int, rank Rank) bool {
	threshold := 4
	if r.Variant == Legacy {
		threshold = 1
	}
	return countRank(view, indexes, rank) >= threshold
}

// countRank counts the cards of the given rank at indexes.
func countRank(view BoardView, indexes []int, rank Rank) int {
	n := 0
	for _, k := range indexes {
		if cardAt(view, k).Rank() == rank {
			n++
		}
	}
	return n
}

// cardAt returns the card at slot k; k must be occupied.
func cardAt(view BoardView, k int) Card {
	c, ok := view.CardAt(k)
	if !ok {
		panic(fmt.Errorf("slot %d: %w", k, ErrEmptySlot))
	}
	return c
}
