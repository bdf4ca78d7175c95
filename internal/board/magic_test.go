package board

import (
	"math/rand"
	"testing"
)

// TestMagicAttacksMatchNaive cross-validates magic-lookup sliding attacks
// against naive ray-walking over random occupancies.
func TestMagicAttacksMatchNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for sq := A1; sq <= H8; sq++ {
		for i := 0; i < 200; i++ {
			occ := Bitboard(rng.Uint64())

			gotBishop := BishopAttacks(sq, occ)
			wantBishop := bishopAttacksSlow(sq, occ)
			if gotBishop != wantBishop {
				t.Fatalf("bishop attacks mismatch at %v, occ=%x: got %x want %x", sq, uint64(occ), uint64(gotBishop), uint64(wantBishop))
			}

			gotRook := RookAttacks(sq, occ)
			wantRook := rookAttacksSlow(sq, occ)
			if gotRook != wantRook {
				t.Fatalf("rook attacks mismatch at %v, occ=%x: got %x want %x", sq, uint64(occ), uint64(gotRook), uint64(wantRook))
			}
		}
	}
}
