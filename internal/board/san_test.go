package board

import "testing"

func TestToSANBasicMoves(t *testing.T) {
	pos := NewPosition()
	moves := pos.GenerateLegalMoves()

	var e4, nf3 string
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if m.From() == E2 && m.To() == E4 {
			e4 = m.ToSAN(pos)
		}
		if m.From() == G1 && m.To() == F3 {
			nf3 = m.ToSAN(pos)
		}
	}

	if e4 != "e4" {
		t.Errorf("e2e4 ToSAN = %q, want %q", e4, "e4")
	}
	if nf3 != "Nf3" {
		t.Errorf("g1f3 ToSAN = %q, want %q", nf3, "Nf3")
	}
}

func TestToSANCheckAndMate(t *testing.T) {
	// Scholar's mate final move: Qxf7#
	pos, err := ParseFEN("r1bqkbnr/pppp1Qpp/2n5/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 4")
	if err != nil {
		t.Fatal(err)
	}
	pos.UpdateCheckers()
	if !pos.IsCheckmate() {
		t.Fatal("expected position to be checkmate")
	}

	// The same mate from the position before it, rendered in SAN.
	before, err := ParseFEN("r1bqkbnr/pppp1ppp/2n5/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 4 4")
	if err != nil {
		t.Fatal(err)
	}
	if san := NewMove(H5, F7).ToSAN(before); san != "Qxf7#" {
		t.Errorf("h5f7 ToSAN = %q, want %q", san, "Qxf7#")
	}

	// A check that is not mate gets the '+' suffix.
	check, err := ParseFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if san := NewMove(A1, A8).ToSAN(check); san != "Ra8+" {
		t.Errorf("a1a8 ToSAN = %q, want %q", san, "Ra8+")
	}
}

func TestToSANDisambiguation(t *testing.T) {
	// Two white rooks, both able to reach d1: disambiguate by file.
	pos, err := ParseFEN("4k3/8/8/8/8/8/8/R4RK1 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	moves := pos.GenerateLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if m.From() == A1 && m.To() == D1 {
			if san := m.ToSAN(pos); san != "Rad1" {
				t.Errorf("Ra1d1 ToSAN = %q, want %q", san, "Rad1")
			}
		}
	}
}

func TestParseSANRoundTrip(t *testing.T) {
	pos := NewPosition()
	moves := pos.GenerateLegalMoves()

	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		san := m.ToSAN(pos)
		parsed, err := ParseSAN(san, pos)
		if err != nil {
			t.Fatalf("ParseSAN(%q) error: %v", san, err)
		}
		if parsed != m {
			t.Errorf("ParseSAN(%q) = %v, want %v", san, parsed, m)
		}
	}
}

func TestParseSANCastling(t *testing.T) {
	pos, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	m, err := ParseSAN("O-O", pos)
	if err != nil {
		t.Fatal(err)
	}
	if m.From() != E1 || m.To() != G1 || !m.IsCastling() {
		t.Errorf("O-O parsed as %v, want castling e1g1", m)
	}
}

func TestMovesToSANSequence(t *testing.T) {
	pos := NewPosition()
	moves := pos.GenerateLegalMoves()

	var e4 Move
	for i := 0; i < moves.Len(); i++ {
		if m := moves.Get(i); m.From() == E2 && m.To() == E4 {
			e4 = m
		}
	}
	if e4 == NoMove {
		t.Fatal("e2e4 not found among legal moves")
	}

	after := pos.Copy()
	after.MakeMove(e4)
	reply := after.GenerateLegalMoves()

	var e5 Move
	for i := 0; i < reply.Len(); i++ {
		if m := reply.Get(i); m.From() == E7 && m.To() == E5 {
			e5 = m
		}
	}
	if e5 == NoMove {
		t.Fatal("e7e5 not found among legal replies")
	}

	sans := MovesToSAN(pos, []Move{e4, e5})
	if len(sans) != 2 || sans[0] != "e4" || sans[1] != "e5" {
		t.Errorf("MovesToSAN = %v, want [e4 e5]", sans)
	}
}
