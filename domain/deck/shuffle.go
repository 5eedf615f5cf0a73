package deck

import (
	"crypto/cipher"
	"fmt"
	"math/big"

	"go.dedis.ch/kyber/v4/util/random"
)

// Shuffle collects every card back into the deck and permutes it with a
// Fisher-Yates shuffle driven by rand.
func (d *Deck) Shuffle(rand cipher.Stream) error {
	if err := d.Prepare(); err != nil {
		return err
	}
	if rand == nil {
		return fmt.Errorf("nil random stream")
	}
	for i := len(d.cards) - 1; i > 0; i-- {
		// random.Int never yields zero, so draw from [1, i+1] and shift down.
		j := int(random.Int(big.NewInt(int64(i+2)), rand).Int64()) - 1
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
	return nil
}
