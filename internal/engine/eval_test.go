package engine

import (
	"testing"

	"github.com/clavichord/chesscompare/internal/rules"
	"github.com/stretchr/testify/require"
)

func TestMaterialScoreStartingPositionIsBalanced(t *testing.T) {
	pos := rules.StartingPosition()
	require.Equal(t, Score(0), MaterialScore(pos))
}

func TestNonKingMaterialStartingPositionIsMaxPhase(t *testing.T) {
	pos := rules.StartingPosition()
	require.Equal(t, Score(maxPhase), NonKingMaterial(pos))
}

func TestSquareControlScoreSignsBySideToMove(t *testing.T) {
	pos := rules.StartingPosition()
	require.Greater(t, SquareControlScore(pos, 20), Score(0))

	black := pos.MakeMove(pos.LegalMoves()[0])
	require.Less(t, SquareControlScore(black, 20), Score(0))
}

func TestEvalFoolsMateIsForcedLossForWhite(t *testing.T) {
	pos := rules.StartingPosition()
	for _, uci := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		move := findMove(t, pos, uci)
		pos = pos.MakeMove(move)
	}
	require.Equal(t, rules.Checkmate, pos.Status())

	eval := NewEvaluator(0)
	require.Equal(t, ForcedLossForWhite, eval.Eval(pos, 0, nil, IncrementalPSQT{}))
}

func TestEvalStalemateIsDraw(t *testing.T) {
	pos, err := rules.FromFEN("8/8/8/8/8/k7/1q6/K7 w - - 0 1")
	require.NoError(t, err)
	require.Equal(t, rules.Stalemate, pos.Status())

	eval := NewEvaluator(0)
	require.Equal(t, DrawScore, eval.Eval(pos, 0, nil, IncrementalPSQT{}))
}

func TestEvalRepeatedPositionIsDraw(t *testing.T) {
	pos := rules.StartingPosition()
	rep := NewRepetitionCounter()
	rep.Increment(pos.Hash())
	rep.Increment(pos.Hash())

	eval := NewEvaluator(0)
	require.Equal(t, DrawScore, eval.Eval(pos, 0, rep, IncrementalPSQT{}))
}

func findMove(t *testing.T, pos rules.Position, uci string) rules.Move {
	t.Helper()
	for _, m := range pos.LegalMoves() {
		if m.String() == uci {
			return m
		}
	}
	t.Fatalf("move %q not legal in position", uci)
	return rules.NoMove
}
