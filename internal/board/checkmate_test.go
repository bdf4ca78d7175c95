package board

import (
	"testing"
)

func TestCheckmate(t *testing.T) {
	// Test position: Back rank mate - already checkmate
	// White: Ka1, Ra8
	// Black: Kh8, pawns on g7 and h7 blocking escape
	// Black is already in checkmate (Black to move)
	pos, err := ParseFEN("R6k/6pp/8/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatal("Error parsing FEN:", err)
	}

	t.Log("Checkmate position:")
	t.Log(pos)

	pos.UpdateCheckers()

	t.Log("Checkers bitboard:", pos.Checkers)
	t.Log("InCheck:", pos.InCheck())

	// List all legal moves for black
	blackMoves := pos.GenerateLegalMoves()
	t.Log("Black legal moves:", blackMoves.Len())
	for i := 0; i < blackMoves.Len(); i++ {
		t.Log("  Move:", blackMoves.Get(i))
	}

	t.Log("HasLegalMoves:", pos.HasLegalMoves())
	t.Log("IsCheckmate:", pos.IsCheckmate())
	t.Log("IsStalemate:", pos.IsStalemate())

	if !pos.IsCheckmate() {
		t.Error("Expected checkmate but got false")
	}
}

func TestNotCheckmate(t *testing.T) {
	// Test position: King CAN escape - not checkmate
	// Black king on h8, rook on g8 but king can take it
	pos, err := ParseFEN("6Rk/8/8/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatal("Error parsing FEN:", err)
	}

	t.Log("Not checkmate position (king can capture rook):")
	t.Log(pos)

	pos.UpdateCheckers()

	t.Log("Checkers bitboard:", pos.Checkers)
	t.Log("InCheck:", pos.InCheck())

	blackMoves := pos.GenerateLegalMoves()
	t.Log("Black legal moves:", blackMoves.Len())
	for i := 0; i < blackMoves.Len(); i++ {
		t.Log("  Move:", blackMoves.Get(i))
	}

	t.Log("IsCheckmate:", pos.IsCheckmate())

	if pos.IsCheckmate() {
		t.Error("Expected NOT checkmate but got true")
	}
}

func TestStalemate(t *testing.T) {
	// Classic stalemate: Black king boxed into a8 with no checks and no
	// legal moves, White to move last put the king there with the queen.
	pos, err := ParseFEN("k7/8/1Q6/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatal("Error parsing FEN:", err)
	}

	pos.UpdateCheckers()

	if pos.InCheck() {
		t.Fatal("expected stalemate position to not be in check")
	}
	if pos.IsCheckmate() {
		t.Error("expected stalemate, got checkmate")
	}
	if !pos.IsStalemate() {
		t.Error("expected stalemate but got false")
	}
	if pos.HasLegalMoves() {
		t.Error("stalemated side should have no legal moves")
	}
}

func TestSmotheredMate(t *testing.T) {
	// Knight on f7 checks the king on h8; the king's three neighbouring
	// squares are all occupied by its own rook and pawns, a knight check
	// cannot be blocked, and f7 isn't a rook or pawn capture from any
	// black piece on the board.
	pos, err := ParseFEN("6rk/5Npp/8/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatal("Error parsing FEN:", err)
	}

	pos.UpdateCheckers()

	if pos.Checkers.PopCount() != 1 {
		t.Fatalf("expected exactly one checker, got %d", pos.Checkers.PopCount())
	}
	if !pos.IsCheckmate() {
		t.Error("expected smothered checkmate but got false")
	}
}

func TestInsufficientMaterialIsNotCheckmateOrStalemate(t *testing.T) {
	// King and bishop vs lone king: drawn by insufficient material, but
	// that is a distinct condition from checkmate/stalemate - neither
	// GenerateLegalMoves nor the checkmate/stalemate helpers should claim
	// the side to move has no moves here.
	pos, err := ParseFEN("7k/8/8/8/8/8/3B4/K7 b - - 0 1")
	if err != nil {
		t.Fatal("Error parsing FEN:", err)
	}

	pos.UpdateCheckers()

	if pos.IsCheckmate() {
		t.Error("lone king should not be in checkmate")
	}
	if pos.IsStalemate() {
		t.Error("lone king with legal king moves should not be stalemated")
	}
	if !pos.IsInsufficientMaterial() {
		t.Error("king and bishop vs king should be insufficient material")
	}
}
