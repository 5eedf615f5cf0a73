package tens

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/paulhankin/poker"
	"github.com/pterm/pterm"
)

// Rank is the face value category of a card (1-13: ace through king).
type Rank uint8

// Card rank constants. Ranks 2-9 are their own numeric value.
const (
	Ace   Rank = 1
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

// Suit of a card (0-3).
type Suit uint8

// Card suit constants (0-3)
const (
	Club    Suit = 0 // ♣ (black)
	Diamond Suit = 1 // ♦ (red)
	Heart   Suit = 2 // ♥ (red)
	Spade   Suit = 3 // ♠ (black)
)

// Ranks lists every rank dealt in a game of Tens.
var Ranks = [...]Rank{Ace, 2, 3, 4, 5, 6, 7, 8, 9, Ten, Jack, Queen, King}

// Suits lists every suit dealt in a game of Tens.
var Suits = [...]Suit{Spade, Heart, Diamond, Club}

// pointValues is indexed by rank. Face cards are worth nothing.
var pointValues = [...]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 0, 0, 0}

// Card represents a face-up playing card on the board.
type Card struct {
	suit Suit
	rank Rank
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - suit: 0-3 (Club, Diamond, Heart, Spade)
//   - rank: 1-13 (Ace=1, 2-10=face value, Jack=11, Queen=12, King=13)
//
// Returns the Card or an error if suit or rank is invalid.
func NewCard(suit Suit, rank Rank) (Card, error) {
	if suit > Spade || rank < Ace || rank > King {
		return Card{}, fmt.Errorf("invalid card %d, %d", suit, rank)
	}
	return Card{suit: suit, rank: rank}, nil
}

// Suit returns the suit of the Card.
func (c Card) Suit() Suit {
	return c.suit
}

// Rank returns the rank of the Card.
func (c Card) Rank() Rank {
	return c.rank
}

// PointValue returns the value used by the sum-to-ten rule.
func (c Card) PointValue() int {
	return c.rank.PointValue()
}

// PointValue returns the value of the rank in Tens: ace counts 1, 2-10 their
// face value, jack, queen and king 0.
func (r Rank) PointValue() int {
	if int(r) >= len(pointValues) {
		return 0
	}
	return pointValues[r]
}

func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return fmt.Sprintf("%d", uint8(r))
	}
}

// String returns a human-readable representation of the Card using suit symbols
// (♣, ♦, ♥, ♠) and rank abbreviations (A, J, Q, K, or number).
func (c Card) String() string {
	var suit string
	switch c.suit {
	case Club:
		suit = pterm.Black("♣")
	case Diamond:
		suit = pterm.LightRed("♦")
	case Heart:
		suit = pterm.LightRed("♥")
	case Spade:
		suit = pterm.Black("♠")
	default:
		suit = "?"
	}
	return c.rank.String() + suit
}

// Code returns the card without colours, in the form read by ParseCard.
func (c Card) Code() string {
	return c.rank.String() + "CDHS"[c.suit:c.suit+1]
}

// ParseCard reads a card written as rank followed by a suit letter, e.g.
// "10H", "qs" or "A♣". The suit-first poker notation ("HT", "CA") is accepted
// as well.
func ParseCard(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if pc, ok := poker.NameToCard[s]; ok {
		return NewCard(Suit(pc.Suit()), Rank(pc.Rank()))
	}
	runes := []rune(s)
	if len(runes) < 2 {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}
	var suit Suit
	switch runes[len(runes)-1] {
	case 'C', '♣':
		suit = Club
	case 'D', '♦':
		suit = Diamond
	case 'H', '♥':
		suit = Heart
	case 'S', '♠':
		suit = Spade
	default:
		return Card{}, fmt.Errorf("invalid suit in %q", s)
	}
	var rank Rank
	switch r := string(runes[:len(runes)-1]); r {
	case "A":
		rank = Ace
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	default:
		if r[0] < '0' || r[0] > '9' {
			return Card{}, fmt.Errorf("invalid rank in %q", s)
		}
		v, err := strconv.Atoi(r)
		if err != nil || v < 2 || v > 10 {
			return Card{}, fmt.Errorf("invalid rank in %q", s)
		}
		rank = Rank(v)
	}
	return NewCard(suit, rank)
}
