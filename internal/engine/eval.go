package engine

import "github.com/clavichord/chesscompare/internal/rules"

// Evaluator bundles the module bitmask together with every
// memoization cache a gated evaluation term needs. One Evaluator is
// owned by a single Engine; its caches live for the lifetime of that
// engine and are only ever cleared, never swapped out, so that the
// memo hit rate accumulates across everything that engine evaluates
// until its next Reset.
type Evaluator struct {
	modules       Module
	naive         *NaivePSQTMemo
	pesto         *PestoPSQTMemo
	pawnStructure *PawnStructureMemo
}

// NewEvaluator builds an Evaluator gated by the given module bitmask,
// with fresh, empty memoization caches.
func NewEvaluator(modules Module) *Evaluator {
	return &Evaluator{
		modules:       modules,
		naive:         NewNaivePSQTMemo(),
		pesto:         NewPestoPSQTMemo(),
		pawnStructure: NewPawnStructureMemo(),
	}
}

// Reset clears every memoization cache without discarding the module
// configuration. Called between games so that stale bitboard keys from
// a previous opponent don't linger indefinitely.
func (e *Evaluator) Reset() {
	e.naive.Clear()
	e.pesto.Clear()
	e.pawnStructure.Clear()
}

// Eval scores pos from White's perspective. It first resolves terminal
// outcomes (checkmate, stalemate, and positions repeated at least
// twice under repetition), then sums every evaluation term gated on by
// e.modules. Material is always included; it carries no module flag of
// its own. incremental is only consulted when
// TaperedIncrementalPestoPSQT is set, letting the caller thread an
// IncrementalPSQT accumulator through the search instead of paying for
// a from-scratch recomputation at every node.
func (e *Evaluator) Eval(pos rules.Position, legalMoveCount int, repetition *RepetitionCounter, incremental IncrementalPSQT) Score {
	switch pos.Status() {
	case rules.Checkmate:
		if pos.SideToMove() == rules.White {
			return ForcedLossForWhite
		}
		return ForcedWinForWhite
	case rules.Stalemate:
		return DrawScore
	}

	if repetition != nil && repetition.Count(pos.Hash()) >= 2 {
		return DrawScore
	}

	total := MaterialScore(pos)

	sign := Score(1)
	if pos.SideToMove() == rules.Black {
		sign = -1
	}

	if e.modules.Has(SquareControlMetric) {
		total += SquareControlScore(pos, legalMoveCount)
	}
	if e.modules.Has(NaivePSQT) {
		total += sign * NaivePSQTScore(pos, e.naive)
	}
	if e.modules.Has(PawnStructure) {
		total += sign * PawnStructureScore(pos, e.pawnStructure)
	}
	if e.modules.Has(TaperedEveryPestoPSQT) {
		total += TaperedPestoScore(pos, e.pesto)
	}
	if e.modules.Has(TaperedIncrementalPestoPSQT) {
		total += incremental.Score(pos)
	}

	return total
}
