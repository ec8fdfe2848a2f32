// Package engine implements the search and evaluation core: an
// iterative-deepening alpha-beta searcher driven by a composable,
// feature-flagged static evaluation function.
package engine

import "fmt"

// Module is a single bit in the feature-flag bitmask. Each module gates
// one additive evaluation term or one search optimization, independent
// of the others, so that A/B experiments between two bitmasks are
// meaningful.
type Module uint32

const (
	// Analyze attaches a debug trace to the root search call.
	Analyze Module = 1 << iota
	// AlphaBeta enables alpha-beta pruning; without it the search is
	// plain minimax.
	AlphaBeta
	// TranspositionTable enables caching and reuse of search results
	// keyed by position hash.
	TranspositionTable
	// SearchExtensions enables selective depth extensions for forcing
	// lines (singular replies, double check).
	SearchExtensions
	// SquareControlMetric enables the mobility evaluation term.
	SquareControlMetric
	// SkipBadMoves enables pruning of late moves in the ordered move
	// list at a configurable fraction of the list length.
	SkipBadMoves
	// NaivePSQT enables the flat (non-tapered) piece-square table term.
	NaivePSQT
	// PawnStructure enables the pawn-structure evaluation term.
	PawnStructure
	// TaperedEveryPestoPSQT enables the tapered middlegame/endgame PSQT
	// term, recomputed from scratch at every node.
	TaperedEveryPestoPSQT
	// TaperedIncrementalPestoPSQT enables the same tapered PSQT term,
	// maintained incrementally as moves are made and unmade during
	// search instead of recomputed per node.
	TaperedIncrementalPestoPSQT

	allModules = Analyze | AlphaBeta | TranspositionTable | SearchExtensions |
		SquareControlMetric | SkipBadMoves | NaivePSQT | PawnStructure |
		TaperedEveryPestoPSQT | TaperedIncrementalPestoPSQT
)

var moduleNames = map[Module]string{
	Analyze:                     "ANALYZE",
	AlphaBeta:                   "ALPHA_BETA",
	TranspositionTable:          "TRANSPOSITION_TABLE",
	SearchExtensions:            "SEARCH_EXTENSIONS",
	SquareControlMetric:         "SQUARE_CONTROL_METRIC",
	SkipBadMoves:                "SKIP_BAD_MOVES",
	NaivePSQT:                   "NAIVE_PSQT",
	PawnStructure:               "PAWN_STRUCTURE",
	TaperedEveryPestoPSQT:       "TAPERED_EVERY_PESTO_PSQT",
	TaperedIncrementalPestoPSQT: "TAPERED_INCREMENTAL_PESTO_PSQT",
}

// Has reports whether bitmask m has every bit of flag set.
func (m Module) Has(flag Module) bool {
	return m&flag == flag
}

// String renders a bitmask as its set of flag names, e.g.
// "ALPHA_BETA|NAIVE_PSQT".
func (m Module) String() string {
	if m == 0 {
		return "NONE"
	}
	s := ""
	for bit := Module(1); bit != 0 && bit <= allModules; bit <<= 1 {
		name, known := moduleNames[bit]
		if !known || m&bit == 0 {
			continue
		}
		if s != "" {
			s += "|"
		}
		s += name
	}
	return s
}

// Validate returns an error if mask sets any bit outside the defined
// module set. An unknown module bit is a programming error: the caller
// asked for an optimization that does not exist.
func Validate(mask Module) error {
	if mask&^allModules != 0 {
		return fmt.Errorf("engine: module mask %#x sets undefined bits %#x", uint32(mask), uint32(mask&^allModules))
	}
	return nil
}

// DefaultSkipBadMovesFraction is the default fraction f of an ordered move list, past
// which SkipBadMoves stops exploring further moves. The source this
// engine was distilled from computed this threshold but compared it
// against i > numMoves*1.0, which can never trigger; we keep the
// fraction configurable and default it to 1.0 ("prune nothing") so a
// caller must opt in to an actual pruning threshold explicitly.
const DefaultSkipBadMovesFraction = 1.0
