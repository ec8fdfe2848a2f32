package engine

import (
	"testing"
	"time"

	"github.com/clavichord/chesscompare/internal/rules"
	"github.com/stretchr/testify/require"
)

func TestNewEngineRejectsUndefinedModuleBits(t *testing.T) {
	_, err := NewEngine(Module(1) << 31)
	require.Error(t, err)
}

func TestNewEngineAcceptsValidModules(t *testing.T) {
	e, err := NewEngine(AlphaBeta | TranspositionTable)
	require.NoError(t, err)
	require.Equal(t, AlphaBeta|TranspositionTable, e.Modules())
}

func TestSetSkipBadMovesFractionClampsOutOfRangeValues(t *testing.T) {
	e, err := NewEngine(0)
	require.NoError(t, err)

	e.SetSkipBadMovesFraction(0.25)
	require.Equal(t, 0.25, e.skipBadMovesFrac)

	e.SetSkipBadMovesFraction(0)
	require.Equal(t, 1.0, e.skipBadMovesFrac)

	e.SetSkipBadMovesFraction(-1)
	require.Equal(t, 1.0, e.skipBadMovesFrac)

	e.SetSkipBadMovesFraction(1.5)
	require.Equal(t, 1.0, e.skipBadMovesFrac)
}

func TestEngineResetClearsCachesButKeepsModules(t *testing.T) {
	e, err := NewEngine(AlphaBeta | TranspositionTable)
	require.NoError(t, err)

	pos := rules.StartingPosition()
	e.tt.Insert(pos.Hash(), minTranspositionDepth, NewEvaluation(1, rules.Action{}))
	e.RecordPlayed(pos)

	e.Reset()

	require.Equal(t, 0, e.tt.Len())
	require.Empty(t, e.repetition.Snapshot())
	require.Equal(t, AlphaBeta|TranspositionTable, e.Modules())
}

func TestRecordPlayedIncrementsRepetitionCounter(t *testing.T) {
	e, err := NewEngine(0)
	require.NoError(t, err)

	pos := rules.StartingPosition()
	require.Equal(t, 0, e.repetition.Count(pos.Hash()))

	e.RecordPlayed(pos)
	require.Equal(t, 1, e.repetition.Count(pos.Hash()))

	e.RecordPlayed(pos)
	require.Equal(t, 2, e.repetition.Count(pos.Hash()))
}

func TestRecordPlayedPrimesIncrementalPSQTWhenModuleIsSet(t *testing.T) {
	e, err := NewEngine(TaperedIncrementalPestoPSQT)
	require.NoError(t, err)
	require.False(t, e.incrementalPrimed)

	e.RecordPlayed(rules.StartingPosition())
	require.True(t, e.incrementalPrimed)
}

func TestRecordPlayedDoesNotPrimeIncrementalPSQTWhenModuleIsUnset(t *testing.T) {
	e, err := NewEngine(0)
	require.NoError(t, err)

	e.RecordPlayed(rules.StartingPosition())
	require.False(t, e.incrementalPrimed)
}

func TestCloneProducesIndependentEngineWithEmptyCaches(t *testing.T) {
	e, err := NewEngine(AlphaBeta | TranspositionTable)
	require.NoError(t, err)
	e.SetSkipBadMovesFraction(0.4)

	pos := rules.StartingPosition()
	e.tt.Insert(pos.Hash(), minTranspositionDepth, NewEvaluation(1, rules.Action{}))
	e.RecordPlayed(pos)

	clone := e.Clone()

	require.Equal(t, e.Modules(), clone.Modules())
	require.Equal(t, 0.4, clone.skipBadMovesFrac)
	require.Equal(t, 0, clone.tt.Len())
	require.Empty(t, clone.repetition.Snapshot())

	// mutating the clone must never affect the original.
	clone.RecordPlayed(pos)
	require.Equal(t, 1, clone.repetition.Count(pos.Hash()))
	require.Equal(t, 1, e.repetition.Count(pos.Hash()))
}

func TestTranspositionHitRateReflectsLookups(t *testing.T) {
	e, err := NewEngine(0)
	require.NoError(t, err)
	require.Equal(t, 0.0, e.TranspositionHitRate())

	pos := rules.StartingPosition()
	e.tt.Insert(pos.Hash(), minTranspositionDepth, NewEvaluation(1, rules.Action{}))
	e.tt.Get(pos.Hash())

	require.Greater(t, e.TranspositionHitRate(), 0.0)
}

func TestNextActionTimeSpentIsRecorded(t *testing.T) {
	e, err := NewEngine(0)
	require.NoError(t, err)

	_, _, stats, err := e.NextAction(rules.StartingPosition(), NewDeadline(50*time.Millisecond))
	require.NoError(t, err)
	require.GreaterOrEqual(t, stats.TimeSpent, time.Duration(0))
}
