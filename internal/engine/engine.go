// Package engine implements the search and evaluation core: an
// iterative-deepening alpha-beta searcher driven by a composable,
// feature-flagged static evaluation function.
package engine

import "github.com/clavichord/chesscompare/internal/rules"

// MaxSearchDepth is the hard ceiling on iterative deepening, regardless
// of how much of the deadline's budget remains unused.
const MaxSearchDepth = 10

// Engine is one fully configured chess-playing agent: a fixed module
// bitmask, the evaluation caches that bitmask turns on, a
// transposition table, and the repetition counter for the actual game
// it is playing (the search increments and decrements this same counter
// around each speculative line; see RepetitionCounter).
type Engine struct {
	modules           Module
	skipBadMovesFrac  float64
	eval              *Evaluator
	tt                *TranspositionTable
	repetition        *RepetitionCounter
	incremental       IncrementalPSQT
	incrementalPrimed bool
}

// NewEngine builds an Engine gated by modules, rejecting any bitmask
// that sets an undefined module bit.
func NewEngine(modules Module) (*Engine, error) {
	if err := Validate(modules); err != nil {
		return nil, err
	}
	return &Engine{
		modules:          modules,
		skipBadMovesFrac: DefaultSkipBadMovesFraction,
		eval:             NewEvaluator(modules),
		tt:               NewTranspositionTable(),
		repetition:       NewRepetitionCounter(),
	}, nil
}

// Modules reports the module bitmask this engine was configured with.
func (e *Engine) Modules() Module {
	return e.modules
}

// SetSkipBadMovesFraction overrides the fraction of an ordered move
// list explored when SkipBadMoves is set. Values outside (0, 1] are
// clamped to 1 (no pruning).
func (e *Engine) SetSkipBadMovesFraction(f float64) {
	if f <= 0 || f > 1 {
		f = 1
	}
	e.skipBadMovesFrac = f
}

// Reset clears every cache (transposition table, evaluation memo,
// repetition counts, incremental PSQT) while keeping the module
// configuration, for starting a fresh game against a new opponent.
func (e *Engine) Reset() {
	e.tt.Clear()
	e.eval.Reset()
	e.repetition.Clear()
	e.incrementalPrimed = false
}

// RecordPlayed tells the engine that pos was actually reached in the
// ongoing game, as opposed to merely explored during search. Call this
// once per real move (including the game's starting position), so the
// engine's own repetition counter reflects game history independently
// of whatever a search call increments and decrements internally.
func (e *Engine) RecordPlayed(pos rules.Position) {
	e.repetition.Increment(pos.Hash())
	if e.modules.Has(TaperedIncrementalPestoPSQT) {
		e.incremental = NewIncrementalPSQT(pos, e.eval.pesto)
		e.incrementalPrimed = true
	}
}

// TranspositionHitRate returns the transposition table's hit rate since
// the engine was created or last Reset, for diagnostics between games.
func (e *Engine) TranspositionHitRate() float64 {
	return e.tt.HitRate()
}

// Clone returns a fresh Engine with the same module configuration and
// skip-bad-moves fraction, but empty caches. Competitions run many
// game pairs concurrently; each needs its own isolated transposition
// table, evaluation memo, and repetition counter, so a shared *Engine
// can never be handed to two goroutines at once. Clone is how the
// harness turns one configured engine into as many isolated instances
// as it needs.
func (e *Engine) Clone() *Engine {
	clone, err := NewEngine(e.modules)
	if err != nil {
		// modules was already validated by the original NewEngine call.
		panic(err)
	}
	clone.skipBadMovesFrac = e.skipBadMovesFrac
	return clone
}
