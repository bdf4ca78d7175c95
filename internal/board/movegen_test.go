package board

import "testing"

func TestPinnedKnightHasNoMoves(t *testing.T) {
	pos, err := ParseFEN("4r2k/8/8/8/8/8/4N3/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	moves := pos.GenerateLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		if moves.Get(i).From() == E2 {
			t.Errorf("pinned knight on e2 should have no legal moves, found %v", moves.Get(i))
		}
	}
}

func TestDoubleCheckOnlyKingMoves(t *testing.T) {
	pos, err := ParseFEN("4r1k1/8/8/8/8/5n2/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	moves := pos.GenerateLegalMoves()
	if moves.Len() == 0 {
		t.Fatal("expected at least one king move")
	}
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if m.From() != pos.KingSquare[White] {
			t.Errorf("double check: expected only king moves, got move from %v", m.From())
		}
	}
}

func TestCastlingBlockedByAttackedTransitSquare(t *testing.T) {
	pos, err := ParseFEN("4k3/8/b7/8/8/8/8/R3K2R w KQ - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	moves := pos.GenerateLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if m.IsCastling() && m.To() == G1 {
			t.Error("should not castle kingside through attacked f1")
		}
	}
}

func TestEnPassantDiscoveredCheckIllegal(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/KPp4r/8/8/8/8 w - c6 0 1")
	if err != nil {
		t.Fatal(err)
	}

	moves := pos.GenerateLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		if moves.Get(i).IsEnPassant() {
			t.Error("en passant should be illegal: discovered rank check from h5 rook")
		}
	}
}

func TestPromotionGeneratesFourMoves(t *testing.T) {
	pos, err := ParseFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	moves := pos.GenerateLegalMoves()
	count := 0
	for i := 0; i < moves.Len(); i++ {
		if moves.Get(i).IsPromotion() {
			count++
		}
	}
	if count != 4 {
		t.Errorf("expected 4 promotion moves from a7, got %d", count)
	}
}
