// Package ledger implements an append-only, hash-chained log of the plays
// made during a game of Tens.
//
// # Core Components
//
// Ledger: An append-only list of blocks, starting from a genesis block, in
// which every block carries the hash of its predecessor.
//
// Block: A single play with its timestamp, payload and the hash linking it
// to the previous block.
//
// # Properties
//
// The ledger provides:
//   - Ordering: plays are numbered in the order they were made
//   - Tamper detection: any modification of a recorded play breaks the chain
//
// The ledger lives in memory only and is discarded with the game.
package ledger
