package tens

import (
	"crypto/cipher"
	"errors"
	"fmt"

	"github.com/luca-patrignani/tens/domain/deck"
)

// DeckSize is the number of cards in a Tens deck.
const DeckSize = len(Ranks) * len(Suits)

// TensDeck is a standard 52-card deck dealing Tens cards.
type TensDeck struct {
	*deck.Deck
}

func NewTensDeck() TensDeck {
	return TensDeck{
		Deck: &deck.Deck{DeckSize: DeckSize},
	}
}

// IntToCard converts a raw card number (1-52) to a Card. Card numbers map to suits in order
// (clubs, diamonds, hearts, spades) with ranks 1-13 within each suit. Returns an error
// if the card number is outside the valid range.
func IntToCard(rawCard int) (Card, error) {
	if rawCard > DeckSize || rawCard < 1 {
		return Card{}, errors.New("the card to convert have an invalid value")
	}
	suit := Suit((rawCard - 1) / 13)
	rank := Rank((rawCard-1)%13 + 1)
	return NewCard(suit, rank)
}

func CardToInt(card Card) int {
	return int(card.Suit())*13 + int(card.Rank())
}

// Shuffle gathers all 52 cards and shuffles them with rand, then checks that
// the result is still a proper deck.
func (d TensDeck) Shuffle(rand cipher.Stream) error {
	if err := d.Deck.Shuffle(rand); err != nil {
		return err
	}
	return d.Verify()
}

// DrawCard deals the top card.
func (d TensDeck) DrawCard() (Card, error) {
	c, err := d.Deck.Draw()
	if err != nil {
		return Card{}, err
	}
	return IntToCard(c)
}

// Verify checks that every undealt card is a valid playing card and that no
// card appears twice.
func (d TensDeck) Verify() error {
	seen := make(map[Card]bool, d.Remaining())
	for _, raw := range d.Cards() {
		c, err := IntToCard(raw)
		if err != nil {
			return err
		}
		if seen[c] {
			return fmt.Errorf("duplicate card %s in deck", c.Code())
		}
		seen[c] = true
	}
	return nil
}
