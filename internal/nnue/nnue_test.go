package nnue

import (
	"testing"

	"github.com/corvidchess/corvid/internal/board"
)

func TestChess768IndexRange(t *testing.T) {
	pos := board.NewPosition()
	white, black := GetActiveFeatures(pos)

	if len(white) != 32 || len(black) != 32 {
		t.Fatalf("expected 32 active features per perspective at the start position, got white=%d black=%d", len(white), len(black))
	}

	for _, idx := range append(append([]int{}, white...), black...) {
		if idx < 0 || idx >= Chess768Size {
			t.Errorf("feature index %d out of range [0, %d)", idx, Chess768Size)
		}
	}
}

func TestChess768IndexColorOffset(t *testing.T) {
	// A white pawn on e4 seen from White's own perspective must land in the
	// first 384 indices; the same piece seen from Black's perspective must
	// land in the second 384.
	idxUs := chess768Index(board.White, board.White, board.Pawn, board.E4)
	idxThem := chess768Index(board.Black, board.White, board.Pawn, board.E4)

	if idxUs >= 384 {
		t.Errorf("own-perspective index %d should be < 384", idxUs)
	}
	if idxThem < 384 {
		t.Errorf("opponent-perspective index %d should be >= 384", idxThem)
	}
}

func TestIncrementalMatchesFullRecompute(t *testing.T) {
	net := NewNetwork()
	net.InitRandom(7)

	pos := board.NewPosition()
	var full, incremental Accumulator
	full.ComputeFull(pos, net)
	incremental.ComputeFull(pos, net)

	move := board.NewMove(board.E2, board.E4)
	undo := pos.MakeMove(move)
	incremental.UpdateIncremental(pos, move, undo.CapturedPiece, net)
	full.ComputeFull(pos, net)

	if full != incremental {
		t.Errorf("incremental accumulator diverged from full recompute after %v", move)
	}
}

func TestForwardIsSymmetricUnderPerspectiveSwap(t *testing.T) {
	net := NewNetwork()
	net.InitRandom(42)

	pos := board.NewPosition()
	var acc Accumulator
	acc.ComputeFull(pos, net)

	whiteToMove := net.Forward(&acc, board.White)
	blackToMove := net.Forward(&acc, board.Black)

	// The start position is its own colour mirror, so both perspectives'
	// accumulators are identical and the score cannot depend on who moves.
	if whiteToMove != blackToMove {
		t.Errorf("start-position score depends on side to move: white=%d black=%d", whiteToMove, blackToMove)
	}
}
