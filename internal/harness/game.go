package harness

import (
	"time"

	"github.com/clavichord/chesscompare/internal/engine"
	"github.com/clavichord/chesscompare/internal/rules"
)

// Outcome classifies how a single game ended.
type Outcome uint8

const (
	WhiteWins Outcome = iota
	BlackWins
	Draw
	Inconclusive
)

func (o Outcome) String() string {
	switch o {
	case WhiteWins:
		return "white wins"
	case BlackWins:
		return "black wins"
	case Draw:
		return "draw"
	default:
		return "inconclusive"
	}
}

// GameInfo is the full record of one played game.
type GameInfo struct {
	Outcome       Outcome
	Reason        string
	Plies         int
	WhiteStats    engine.Stats
	BlackStats    engine.Stats
	FinalPosition rules.Position
}

// PlayGame alternates white and black making moves from start until
// the position reaches a terminal status, one side resigns or
// declares a draw, or maxPlies half-moves have been played without a
// conclusion (reported as Inconclusive). PlayGame calls RecordPlayed
// on both engines for start and for every move actually played, so
// callers must not record start themselves; the engines' repetition
// counters track the real game regardless of who is asked to move
// next.
func PlayGame(white, black *engine.Engine, start rules.Position, maxPlies int, perMoveBudget time.Duration) GameInfo {
	white.RecordPlayed(start)
	black.RecordPlayed(start)

	pos := start
	var whiteStats, blackStats engine.Stats

	for plies := 0; plies < maxPlies; plies++ {
		if status := pos.Status(); status != rules.Ongoing {
			return concludeByStatus(status, pos, plies, whiteStats, blackStats)
		}

		mover := white
		if pos.SideToMove() == rules.Black {
			mover = black
		}

		deadline := engine.NewDeadline(perMoveBudget)
		action, _, stats, err := mover.NextAction(pos, deadline)
		if pos.SideToMove() == rules.White {
			whiteStats = whiteStats.Add(stats)
		} else {
			blackStats = blackStats.Add(stats)
		}
		if err != nil {
			return GameInfo{
				Outcome:       opponentWins(pos.SideToMove()),
				Reason:        "engine error: " + err.Error(),
				Plies:         plies,
				WhiteStats:    whiteStats,
				BlackStats:    blackStats,
				FinalPosition: pos,
			}
		}

		switch action.Kind {
		case rules.ActionResign:
			return GameInfo{
				Outcome:       opponentWins(action.By),
				Reason:        "resignation",
				Plies:         plies,
				WhiteStats:    whiteStats,
				BlackStats:    blackStats,
				FinalPosition: pos,
			}
		case rules.ActionDeclareDraw:
			return GameInfo{
				Outcome:       Draw,
				Reason:        "draw declared on repetition",
				Plies:         plies,
				WhiteStats:    whiteStats,
				BlackStats:    blackStats,
				FinalPosition: pos,
			}
		default:
			pos = pos.MakeMove(action.Move)
			white.RecordPlayed(pos)
			black.RecordPlayed(pos)
		}
	}

	if status := pos.Status(); status != rules.Ongoing {
		return concludeByStatus(status, pos, maxPlies, whiteStats, blackStats)
	}

	return GameInfo{
		Outcome:       Inconclusive,
		Reason:        "max plies exceeded",
		Plies:         maxPlies,
		WhiteStats:    whiteStats,
		BlackStats:    blackStats,
		FinalPosition: pos,
	}
}

func concludeByStatus(status rules.Status, pos rules.Position, plies int, whiteStats, blackStats engine.Stats) GameInfo {
	info := GameInfo{Plies: plies, WhiteStats: whiteStats, BlackStats: blackStats, FinalPosition: pos}
	switch status {
	case rules.Checkmate:
		info.Outcome = opponentWins(pos.SideToMove())
		info.Reason = "checkmate"
	default:
		info.Outcome = Draw
		info.Reason = "stalemate"
	}
	return info
}

func opponentWins(loser rules.Color) Outcome {
	if loser == rules.White {
		return BlackWins
	}
	return WhiteWins
}
