package harness

import (
	"context"
	"math/rand"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/clavichord/chesscompare/internal/engine"
)

// DefaultMaxPlies is the ply limit a game is played to before it is
// called Inconclusive instead of letting a buggy or extremely
// defensive pairing run forever.
const DefaultMaxPlies = 150

// Config configures one competition run between two engine
// configurations.
type Config struct {
	NewA, NewB    func() *engine.Engine
	Pairs         int
	PerMoveBudget time.Duration
	MaxPlies      int // 0 means DefaultMaxPlies
}

// StartCompetition runs cfg.Pairs game pairs between A and B, each
// from its own random opening, dispatched across a worker pool sized
// to GOMAXPROCS so pairs run with the same task-level parallelism the
// teacher's worker pool used for search nodes: here the unit of
// concurrency is a whole game pair, never a single search call, since
// the search itself always runs single-threaded.
func StartCompetition(ctx context.Context, cfg Config) (*Aggregator, error) {
	maxPlies := cfg.MaxPlies
	if maxPlies <= 0 {
		maxPlies = DefaultMaxPlies
	}

	agg := NewAggregator()
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))

	for i := 0; i < cfg.Pairs; i++ {
		seed := time.Now().UnixNano() + int64(i)
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			rng := rand.New(rand.NewSource(seed))
			result := PlayGamePair(cfg.NewA, cfg.NewB, rng, maxPlies, cfg.PerMoveBudget)
			agg.Add(result)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return agg, err
	}
	return agg, nil
}
