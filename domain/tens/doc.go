// Package tens implements the domain logic for Tens, a patience game played
// on a row of thirteen face-up cards.
//
// # Core Types
//
// Card: A playing card with suit, rank and the point value used by the rules.
//
// Board: Thirteen slots dealt from a shuffled TensDeck. Removed cards are
// replaced from the deck until it runs out.
//
// Rules: The legality predicates. IsLegal checks one selection of slots,
// AnotherPlayIsPossible checks whether any legal group is left on a board.
//
// Game: Ties a Board to a Rules value and records each removal in a ledger.
//
// # Legal Groups
//
// A group is removable when it is either two cards whose point values add up
// to 10 (ace counts 1, jack, queen and king count 0) or four jacks, four
// queens, four kings or four tens.
//
// The Legacy variant reproduces the first published board, which only ever
// recognised jacks in a four-card selection and accepted a four-of-a-rank
// match as soon as one card of the rank was present.
package tens
