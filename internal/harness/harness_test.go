package harness

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/clavichord/chesscompare/internal/engine"
	"github.com/clavichord/chesscompare/internal/rules"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, modules engine.Module) *engine.Engine {
	t.Helper()
	e, err := engine.NewEngine(modules)
	require.NoError(t, err)
	return e
}

func TestRandomOpeningPlaysUpToOpeningPlies(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pos := RandomOpening(rng)
	require.NotEqual(t, rules.StartingPosition().Hash(), pos.Hash())
}

func TestPlayGameStalemateConcludesAsDraw(t *testing.T) {
	pos, err := rules.FromFEN("8/8/8/8/8/k7/1q6/K7 w - - 0 1")
	require.NoError(t, err)

	white := newTestEngine(t, 0)
	black := newTestEngine(t, 0)

	info := PlayGame(white, black, pos, DefaultMaxPlies, 50*time.Millisecond)
	require.Equal(t, Draw, info.Outcome)
	require.Equal(t, "stalemate", info.Reason)
	require.Equal(t, 0, info.Plies)
}

func TestPlayGameCheckmateConcludesWithWinner(t *testing.T) {
	// Black to move, already checkmated (back-rank-style position):
	// White king g6, rook a8 delivering mate, Black king h8.
	pos, err := rules.FromFEN("R6k/8/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	require.Equal(t, rules.Checkmate, pos.Status())

	white := newTestEngine(t, 0)
	black := newTestEngine(t, 0)

	info := PlayGame(white, black, pos, DefaultMaxPlies, 50*time.Millisecond)
	require.Equal(t, WhiteWins, info.Outcome)
	require.Equal(t, "checkmate", info.Reason)
}

func TestPlayGameMaxPliesExceededIsInconclusive(t *testing.T) {
	pos := rules.StartingPosition()
	white := newTestEngine(t, 0)
	black := newTestEngine(t, 0)

	info := PlayGame(white, black, pos, 2, 20*time.Millisecond)
	require.Equal(t, Inconclusive, info.Outcome)
	require.Equal(t, "max plies exceeded", info.Reason)
	require.Equal(t, 2, info.Plies)
}

func TestPlayGameRecordsPlayedMovesOnBothEngines(t *testing.T) {
	pos := rules.StartingPosition()
	white := newTestEngine(t, 0)
	black := newTestEngine(t, 0)

	// PlayGame's one ply both picks White's move via white.NextAction
	// and records the resulting position on both engines via
	// RecordPlayed. Recording that same resulting position here a
	// second time brings it to two prior occurrences; if white is
	// asked for its next action from the same starting position again,
	// determinism means it reaches the same decision it reached the
	// first time, and the engine must now convert that decision to
	// DeclareDraw rather than play the move a third time. This only
	// holds if PlayGame actually drove RecordPlayed with the move it
	// played, not merely compiled against it.
	info := PlayGame(white, black, pos, 1, 20*time.Millisecond)
	require.Equal(t, 1, info.Plies)

	white.RecordPlayed(info.FinalPosition)
	action, _, _, err := white.NextAction(pos, engine.NewDeadline(20*time.Millisecond))
	require.NoError(t, err)
	require.Equal(t, rules.ActionDeclareDraw, action.Kind)
}

func TestPlayGamePairTalliesColorSwappedOutcomes(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	newA := func() *engine.Engine { return newTestEngine(t, 0) }
	newB := func() *engine.Engine { return newTestEngine(t, 0) }

	result := PlayGamePair(newA, newB, rng, 2, 20*time.Millisecond)

	total := result.AWins + result.BWins + result.Draws + result.Inconclusive
	require.Equal(t, 2, total)
}

func TestAggregatorAddAccumulatesAcrossPairs(t *testing.T) {
	agg := NewAggregator()
	agg.Add(PairResult{AWins: 1, Draws: 1})
	agg.Add(PairResult{BWins: 2})

	totals := agg.Snapshot()
	require.Equal(t, 2, totals.Pairs)
	require.Equal(t, 1, totals.AWins)
	require.Equal(t, 2, totals.BWins)
	require.Equal(t, 1, totals.Draws)
}

func TestStartCompetitionRunsRequestedPairs(t *testing.T) {
	cfg := Config{
		NewA:          func() *engine.Engine { return newTestEngine(t, 0) },
		NewB:          func() *engine.Engine { return newTestEngine(t, 0) },
		Pairs:         3,
		PerMoveBudget: 10 * time.Millisecond,
		MaxPlies:      4,
	}

	agg, err := StartCompetition(context.Background(), cfg)
	require.NoError(t, err)
	require.Equal(t, 3, agg.Snapshot().Pairs)
}
