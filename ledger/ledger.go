package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// genesisPrevHash marks the first block of every ledger.
const genesisPrevHash = "0"

// Ledger is the hash chained list of plays of a single game.
type Ledger struct {
	game   string
	blocks []Block
}

// New creates a ledger for the named game, holding only its genesis block.
func New(game string) *Ledger {
	genesis := Block{
		PrevHash:  genesisPrevHash,
		Timestamp: time.Now().Unix(),
		Play:      "genesis",
		Metadata:  Metadata{Game: game},
	}
	genesis.Hash = hashOf(genesis)
	return &Ledger{game: game, blocks: []Block{genesis}}
}

// Append records a play after the latest block. The extra parameter can
// optionally contain additional metadata.
func (l *Ledger) Append(play any, extra ...map[string]string) (Block, error) {
	var meta map[string]string
	if len(extra) > 0 {
		meta = extra[0]
	}
	latest := l.Latest()
	b := Block{
		Index:     latest.Index + 1,
		Timestamp: time.Now().Unix(),
		PrevHash:  latest.Hash,
		Play:      play,
		Metadata:  Metadata{Game: l.game, Extra: meta},
	}
	b.Hash = hashOf(b)
	if b.Hash == "" {
		return Block{}, fmt.Errorf("play %v cannot be encoded", play)
	}
	l.blocks = append(l.blocks, b)
	return b, nil
}

// Latest returns the most recently added block.
func (l *Ledger) Latest() Block {
	return l.blocks[len(l.blocks)-1]
}

// Len returns the number of recorded plays, genesis excluded.
func (l *Ledger) Len() int {
	return len(l.blocks) - 1
}

// Verify walks the chain from the genesis block and reports the first block
// whose position, link or content does not match its hash.
func (l *Ledger) Verify() error {
	prevHash := genesisPrevHash
	for i, b := range l.blocks {
		switch {
		case b.Index != i:
			return fmt.Errorf("block %d: found index %d", i, b.Index)
		case b.PrevHash != prevHash:
			return fmt.Errorf("block %d: not linked to the previous block", i)
		case b.Metadata.Game != l.game:
			return fmt.Errorf("block %d: belongs to game %q", i, b.Metadata.Game)
		case b.Hash != hashOf(b):
			return fmt.Errorf("block %d: content does not match hash %s", i, b.Hash)
		}
		prevHash = b.Hash
	}
	return nil
}

// hashOf is the hex SHA256 of the JSON encoding of b without its own hash.
// It is empty when the play cannot be encoded.
func hashOf(b Block) string {
	b.Hash = ""
	data, err := json.Marshal(b)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
