package rules

import "testing"

func TestStartingPositionLegalMoves(t *testing.T) {
	pos := StartingPosition()
	moves := pos.LegalMoves()
	if len(moves) != 20 {
		t.Errorf("expected 20 legal moves from the starting position, got %d", len(moves))
	}
	if pos.SideToMove() != White {
		t.Errorf("expected white to move at game start")
	}
	if pos.Status() != Ongoing {
		t.Errorf("expected Ongoing status at game start")
	}
}

func TestMakeMoveDoesNotMutateReceiver(t *testing.T) {
	pos := StartingPosition()
	before := pos.Hash()
	next := pos.MakeMove(pos.LegalMoves()[0])

	if pos.Hash() != before {
		t.Errorf("MakeMove mutated its receiver: hash changed from %d to %d", before, pos.Hash())
	}
	if next.Hash() == before {
		t.Errorf("expected the resulting position to have a different hash")
	}
	if next.SideToMove() != Black {
		t.Errorf("expected black to move after white's first move")
	}
}

func TestFoolsMateCheckmate(t *testing.T) {
	pos := StartingPosition()
	for _, uci := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		found := false
		for _, m := range pos.LegalMoves() {
			if m.String() == uci {
				pos = pos.MakeMove(m)
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("move %s not found among legal moves", uci)
		}
	}

	if pos.Status() != Checkmate {
		t.Fatalf("expected checkmate after fool's mate, got status %v", pos.Status())
	}
	if pos.CheckerCount() < 1 {
		t.Errorf("expected at least one checker delivering mate")
	}
}

func TestStalemateStatus(t *testing.T) {
	// White king a1, black king a3, black queen b3, white to move: stalemate.
	pos, err := FromFEN("8/8/8/8/8/k7/1q6/K7 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	if pos.Status() != Stalemate {
		t.Errorf("expected Stalemate, got %v", pos.Status())
	}
}

func TestFromFENRejectsGarbage(t *testing.T) {
	if _, err := FromFEN("not a fen string"); err == nil {
		t.Errorf("expected an error parsing a malformed FEN")
	}
}
