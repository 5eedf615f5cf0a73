package ledger

// Block is one recorded play.
type Block struct {
	Index     int      `json:"index"`
	Timestamp int64    `json:"timestamp"`
	PrevHash  string   `json:"prev_hash"`
	Hash      string   `json:"hash"`
	Play      any      `json:"play"` // Generic play data
	Metadata  Metadata `json:"metadata"`
}

type Metadata struct {
	Game  string            `json:"game"`
	Extra map[string]string `json:"extra,omitempty"`
}
