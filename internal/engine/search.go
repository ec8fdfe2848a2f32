package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/clavichord/chesscompare/internal/rules"
)

// maxCumulativeExtension caps how many plies SearchExtensions is
// allowed to add along a single line, so a string of checks can't blow
// the search out to an unbounded depth.
const maxCumulativeExtension = 3

// Trace carries the root-level debug information surfaced when
// Analyze is set: the deepest depth fully completed, its score, and
// the best root move found at that depth.
type Trace struct {
	Depth int
	Score Score
	Best  rules.Move
}

// searchContext is scratch state private to one NextAction call: the
// deadline it is bound by, whether the current iterative-deepening
// depth honors that deadline at all, and the stats being accumulated.
type searchContext struct {
	engine        *Engine
	deadline      Deadline
	checkDeadline bool
	stats         Stats
}

// NextAction picks the best action in pos within deadline's time
// budget, iteratively deepening from depth 1 up to MaxSearchDepth. The
// first depth always runs to completion regardless of the deadline, so
// a legal move is always available to return even under an
// unreasonably tight budget; every deeper iteration is free to bail
// out partway through, in which case the previous iteration's result
// is kept. A position that is already terminal is not searched: a
// stalemate yields DeclareDraw and a checkmate yields Resign for the
// side to move.
func (e *Engine) NextAction(pos rules.Position, deadline Deadline) (rules.Action, *Trace, Stats, error) {
	switch pos.Status() {
	case rules.Stalemate:
		return rules.DeclareDrawAction(), nil, Stats{}, nil
	case rules.Checkmate:
		return rules.ResignAction(pos.SideToMove()), nil, Stats{}, nil
	}

	if e.modules.Has(TaperedIncrementalPestoPSQT) && !e.incrementalPrimed {
		// RecordPlayed normally seeds the accumulator before the first
		// search of a game; guard against a caller searching first.
		e.incremental = NewIncrementalPSQT(pos, e.eval.pesto)
		e.incrementalPrimed = true
	}

	start := time.Now()
	maximizing := pos.SideToMove() == rules.White

	sc := &searchContext{engine: e, deadline: deadline}

	var (
		trace      *Trace
		bestAction rules.Action
		haveResult bool
	)

	for depth := 1; depth <= MaxSearchDepth; depth++ {
		sc.checkDeadline = depth > 1
		if sc.checkDeadline && deadline.ShouldStop() {
			sc.stats.NextDepthProgress = 0
			break
		}

		score, move, interrupted := sc.search(pos, depth, ForcedLossForWhite, ForcedWinForWhite, maximizing, 0, true)
		sc.stats.DeepestTouched = depth

		if interrupted {
			break
		}

		bestAction = rules.MakeMoveAction(move)
		haveResult = true
		sc.stats.DeepestCompleted = depth
		if e.modules.Has(Analyze) {
			trace = &Trace{Depth: depth, Score: score, Best: move}
		}

		if score <= ForcedLossForWhite || score >= ForcedWinForWhite {
			break
		}
	}

	if !haveResult {
		return rules.Action{}, nil, Stats{}, fmt.Errorf("engine: no iteration completed before the deadline")
	}

	if bestAction.Kind == rules.ActionMakeMove {
		resulting := pos.MakeMove(bestAction.Move)
		// e.repetition counts only occurrences already recorded via
		// RecordPlayed, so a count of 2 here means playing this move
		// would make resulting the position's third occurrence.
		if e.repetition.Count(resulting.Hash()) >= 2 {
			bestAction = rules.DeclareDrawAction()
		}
	}

	sc.stats.TimeSpent = time.Since(start)
	sc.stats.TotalPlies = 1
	return bestAction, trace, sc.stats, nil
}

// search evaluates pos to the given remaining depth using alpha-beta
// (when AlphaBeta is set) or plain minimax (when it is not), with an
// explicit maximizing flag rather than negamax's sign-flip convention,
// since Score is always expressed from White's perspective. It returns
// whether the call was cut short by the deadline; when interrupted,
// the returned score and move reflect only the moves fully explored so
// far and must not be trusted as a complete result by the caller.
func (sc *searchContext) search(pos rules.Position, depth int, alpha, beta Score, maximizing bool, extension int, isRoot bool) (Score, rules.Move, bool) {
	if sc.checkDeadline && sc.deadline.ShouldStop() {
		return 0, rules.NoMove, true
	}
	sc.stats.NodesVisited++

	if status := pos.Status(); status != rules.Ongoing {
		sc.stats.LeavesVisited++
		return sc.engine.eval.Eval(pos, 0, sc.engine.repetition, sc.engine.incremental), rules.NoMove, false
	}
	// A position already reached twice is treated as a draw so the
	// search doesn't walk a repeating line any deeper than it has to.
	// This must not fire on the root call itself: the root position may
	// have already recurred in real game history, but NextAction still
	// has to search it properly and decide, after the fact, whether the
	// move it actually picks is the one that reaches a third occurrence.
	if !isRoot && sc.engine.repetition.Count(pos.Hash()) >= 2 {
		sc.stats.LeavesVisited++
		return DrawScore, rules.NoMove, false
	}

	if sc.engine.modules.Has(TranspositionTable) {
		if entry, ok := sc.engine.tt.Get(pos.Hash()); ok {
			sc.stats.TranspositionHits++
			if Reusable(entry, depth) {
				return entry.Eval.Score, entry.Eval.Best.Move, false
			}
		}
	}

	moves := pos.LegalMoves()
	if depth <= 0 {
		sc.stats.LeavesVisited++
		return sc.engine.eval.Eval(pos, len(moves), sc.engine.repetition, sc.engine.incremental), rules.NoMove, false
	}

	ordered := sc.orderMoves(pos, moves, maximizing)
	limit := len(ordered)
	if sc.engine.modules.Has(SkipBadMoves) {
		limit = int(float64(len(ordered)) * sc.engine.skipBadMovesFrac)
		if limit < 1 {
			limit = 1
		}
	}

	best := ForcedLossForWhite
	if !maximizing {
		best = ForcedWinForWhite
	}
	var bestMove rules.Move
	haveBest := false

	for i := 0; i < limit; i++ {
		m := ordered[i]
		child := pos.MakeMove(m)
		hash := child.Hash()
		sc.engine.repetition.Increment(hash)

		usingIncremental := sc.engine.modules.Has(TaperedIncrementalPestoPSQT)
		var savedIncremental IncrementalPSQT
		if usingIncremental {
			savedIncremental = sc.engine.incremental
			sc.applyIncremental(pos, m)
		}

		extendThis := 0
		if sc.engine.modules.Has(SearchExtensions) && extension < maxCumulativeExtension {
			if len(child.LegalMoves()) == 1 || child.CheckerCount() >= 2 {
				extendThis = 1
			}
		}

		score, _, interrupted := sc.search(child, depth-1+extendThis, alpha, beta, !maximizing, extension+extendThis, false)

		if usingIncremental {
			sc.engine.incremental = savedIncremental
		}
		sc.engine.repetition.Decrement(hash)

		if interrupted {
			if isRoot {
				sc.stats.NextDepthProgress = float64(i) / float64(limit)
			}
			return best, bestMove, true
		}

		if !haveBest || Better(score, best, maximizing) {
			best = score
			bestMove = m
			haveBest = true
		}

		if maximizing {
			if score > alpha {
				alpha = score
			}
		} else {
			if score < beta {
				beta = score
			}
		}

		if sc.engine.modules.Has(AlphaBeta) && alpha > beta {
			sc.stats.AlphaBetaCutoffs++
			break
		}
	}

	if sc.engine.modules.Has(TranspositionTable) && depth >= minTranspositionDepth {
		sc.engine.tt.Insert(pos.Hash(), depth, NewEvaluation(best, rules.MakeMoveAction(bestMove)))
		sc.stats.TranspositionStore++
	}

	return best, bestMove, false
}

// orderMoves sorts moves by the cached evaluation of the position each
// one reaches, descending for White to move and ascending for Black,
// so that the line alpha-beta expects to be best is tried first. A move
// whose child has no transposition entry yet is sorted as if its cached
// evaluation were 0; moves with equal keys keep their original
// (legal-move-generation) order.
func (sc *searchContext) orderMoves(pos rules.Position, moves []rules.Move, maximizing bool) []rules.Move {
	type candidate struct {
		move rules.Move
		key  Score
	}

	candidates := make([]candidate, len(moves))
	for i, m := range moves {
		c := candidate{move: m}
		if sc.engine.modules.Has(TranspositionTable) {
			child := pos.MakeMove(m)
			if entry, ok := sc.engine.tt.Get(child.Hash()); ok {
				c.key = entry.Eval.Score
			}
		}
		candidates[i] = c
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if maximizing {
			return candidates[i].key > candidates[j].key
		}
		return candidates[i].key < candidates[j].key
	})

	ordered := make([]rules.Move, len(candidates))
	for i, c := range candidates {
		ordered[i] = c.move
	}
	return ordered
}

// applyIncremental updates the engine's running IncrementalPSQT
// accumulator for the move about to be made from pos, before it is
// actually applied to the board. Promotions and en passant captures
// are not reflected precisely (the moved piece is still scored as its
// pre-promotion type, and an en passant capture isn't detected at all,
// since the captured pawn doesn't sit on the destination square); this
// makes the incremental term a close but not exact match for
// TaperedEveryPestoPSQT in those rare cases, corrected the next time
// the accumulator is re-seeded by RecordPlayed.
func (sc *searchContext) applyIncremental(pos rules.Position, m rules.Move) {
	mover := pos.SideToMove()
	pt, _, ok := pos.PieceOn(m.From())
	if !ok {
		return
	}
	capturedType, _, hasCapture := pos.PieceOn(m.To())
	sc.engine.incremental = sc.engine.incremental.ApplyMove(mover, pt, m.From(), m.To(), capturedType, hasCapture)
}
