package rules

import "github.com/IlikeChooros/dragontoothmg"

// Move wraps a dragontoothmg move. It is a plain value; comparing two
// Moves with == compares the underlying encoding.
type Move struct {
	raw dragontoothmg.Move
}

// NoMove is the zero value, meaning "no move".
var NoMove = Move{}

// String renders the move in coordinate notation (e.g. "e2e4", "e7e8q").
func (m Move) String() string {
	return m.raw.String()
}

// To returns the destination square index (0-63).
func (m Move) To() uint8 {
	return m.raw.To()
}

// From returns the origin square index (0-63).
func (m Move) From() uint8 {
	return m.raw.From()
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.raw.Promote() != dragontoothmg.Nothing
}
