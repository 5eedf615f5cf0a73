package deck

import (
	"crypto/cipher"
	"errors"
	"fmt"

	"go.dedis.ch/kyber/v4/suites"
)

// ErrDeckEmpty is returned by Draw when every card has been dealt.
var ErrDeckEmpty = errors.New("deck is empty")

// Deck is an ordered pile of raw card numbers 1..DeckSize.
// The zero value must be prepared before use.
type Deck struct {
	DeckSize int
	cards    []int // index 0 is the top of the deck
	dealt    int
}

var suite suites.Suite = suites.MustFind("Ed25519")

// RandomStream returns a cryptographically secure stream to shuffle with.
func RandomStream() cipher.Stream {
	return suite.RandomStream()
}

// SeededStream returns a deterministic stream derived from seed, so that a
// given seed always yields the same game.
func SeededStream(seed []byte) cipher.Stream {
	return suite.XOF(seed)
}

// Prepare fills the deck with the cards 1..DeckSize in order.
func (d *Deck) Prepare() error {
	if d.DeckSize <= 0 {
		return fmt.Errorf("invalid deck size %d", d.DeckSize)
	}
	d.cards = make([]int, d.DeckSize)
	for i := range d.cards {
		d.cards[i] = i + 1
	}
	d.dealt = 0
	return nil
}

// Draw deals the top card of the deck.
func (d *Deck) Draw() (int, error) {
	if d.IsEmpty() {
		return 0, ErrDeckEmpty
	}
	c := d.cards[d.dealt]
	d.dealt++
	return c, nil
}

// Remaining returns the number of cards not dealt yet.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.dealt
}

// IsEmpty reports whether every card has been dealt.
func (d *Deck) IsEmpty() bool {
	return d.Remaining() <= 0
}

// Cards returns a copy of the undealt cards, top first.
func (d *Deck) Cards() []int {
	out := make([]int, d.Remaining())
	copy(out, d.cards[d.dealt:])
	return out
}
