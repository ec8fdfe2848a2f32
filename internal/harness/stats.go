package harness

import (
	"sync"

	"github.com/clavichord/chesscompare/internal/engine"
)

// Totals is a point-in-time, lock-free copy of an Aggregator's counts.
type Totals struct {
	Pairs                             int
	AWins, BWins, Draws, Inconclusive int
	AStats, BStats                    engine.Stats
}

// Aggregator accumulates pair results from many concurrently running
// game pairs into one shared outcome tally and Stats total, guarded by
// a single mutex. Pairs finish in whatever order their goroutines
// happen to complete in; Add is the only point of contention, and it
// does only cheap integer and Stats.Add work while holding the lock.
type Aggregator struct {
	mu     sync.Mutex
	totals Totals
}

// NewAggregator returns an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Add folds one pair's result into the running totals.
func (a *Aggregator) Add(pr PairResult) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.totals.Pairs++
	a.totals.AWins += pr.AWins
	a.totals.BWins += pr.BWins
	a.totals.Draws += pr.Draws
	a.totals.Inconclusive += pr.Inconclusive

	a.totals.AStats = a.totals.AStats.Add(pr.AsWhite.WhiteStats).Add(pr.AsBlack.BlackStats)
	a.totals.BStats = a.totals.BStats.Add(pr.AsWhite.BlackStats).Add(pr.AsBlack.WhiteStats)
}

// Snapshot returns a copy of the current totals, safe to read while
// other goroutines keep calling Add.
func (a *Aggregator) Snapshot() Totals {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.totals
}
