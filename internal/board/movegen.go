package board

// GenerateLegalMoves generates every legal move for the side to move.
//
// The algorithm computes checkers and pinned pieces once, derives a
// check_mask restricting where non-king pieces may land, and generates
// each piece type directly against that mask instead of generating
// pseudo-legal moves and filtering them with make/unmake.
func (p *Position) GenerateLegalMoves() *MoveList {
	ml := NewMoveList()
	p.generate(ml, false)
	return ml
}

// GenerateCaptures generates legal captures and queen/under promotions,
// the move subset quiescence search expands.
func (p *Position) GenerateCaptures() *MoveList {
	ml := NewMoveList()
	p.generate(ml, true)
	return ml
}

// HasLegalMoves returns true if the side to move has any legal move.
func (p *Position) HasLegalMoves() bool {
	return p.GenerateLegalMoves().Len() > 0
}

// generate is the shared legal-move generator. When capturesOnly is set,
// quiet moves (including quiet castling and quiet king steps) are skipped
// and pawn pushes are restricted to promotions.
func (p *Position) generate(ml *MoveList, capturesOnly bool) {
	us := p.SideToMove
	ksq := p.KingSquare[us]
	checkers := p.Checkers
	pinned := p.ComputePinned()

	switch checkers.PopCount() {
	case 0:
		p.genPawns(ml, ksq, pinned, Universe, capturesOnly)
		p.genKnights(ml, ksq, pinned, Universe, capturesOnly)
		p.genSliders(ml, ksq, pinned, Universe, capturesOnly)
		p.genKing(ml, ksq, capturesOnly)
	case 1:
		checkerSq := checkers.LSB()
		checkMask := Between(ksq, checkerSq) | checkers
		p.genPawns(ml, ksq, pinned, checkMask, capturesOnly)
		p.genKnights(ml, ksq, pinned, checkMask, capturesOnly)
		p.genSliders(ml, ksq, pinned, checkMask, capturesOnly)
		p.genKing(ml, ksq, capturesOnly)
	default:
		// Double check: only the king can move.
		p.genKing(ml, ksq, capturesOnly)
	}
}

// genPawns generates legal pawn moves (pushes, captures, promotions, en passant).
func (p *Position) genPawns(ml *MoveList, ksq Square, pinned, checkMask Bitboard, capturesOnly bool) {
	us := p.SideToMove
	them := us.Other()
	enemies := p.Occupied[them]
	occupied := p.AllOccupied
	empty := ^occupied
	pawns := p.Pieces[us][Pawn]

	var promotionRank Bitboard
	var pushDir int
	if us == White {
		promotionRank = Rank8
		pushDir = 8
	} else {
		promotionRank = Rank1
		pushDir = -8
	}

	if !capturesOnly {
		var push1 Bitboard
		if us == White {
			push1 = pawns.North() & empty
		} else {
			push1 = pawns.South() & empty
		}

		quietSingles := push1 & ^promotionRank & checkMask
		for quietSingles != 0 {
			to := quietSingles.PopLSB()
			from := Square(int(to) - pushDir)
			if !pinned.IsSet(from) || Line(ksq, from).IsSet(to) {
				ml.Add(NewMove(from, to))
			}
		}

		promoSingles := push1 & promotionRank & checkMask
		for promoSingles != 0 {
			to := promoSingles.PopLSB()
			from := Square(int(to) - pushDir)
			if !pinned.IsSet(from) || Line(ksq, from).IsSet(to) {
				addPromotions(ml, from, to)
			}
		}

		var push2 Bitboard
		if us == White {
			push2 = (push1 & Rank3).North() & empty & checkMask
		} else {
			push2 = (push1 & Rank6).South() & empty & checkMask
		}
		for push2 != 0 {
			to := push2.PopLSB()
			from := Square(int(to) - 2*pushDir)
			if !pinned.IsSet(from) || Line(ksq, from).IsSet(to) {
				ml.Add(NewMove(from, to))
			}
		}
	} else {
		// Quiescence still needs push promotions.
		var push1 Bitboard
		if us == White {
			push1 = pawns.North() & empty & promotionRank & checkMask
		} else {
			push1 = pawns.South() & empty & promotionRank & checkMask
		}
		for push1 != 0 {
			to := push1.PopLSB()
			from := Square(int(to) - pushDir)
			if !pinned.IsSet(from) || Line(ksq, from).IsSet(to) {
				addPromotions(ml, from, to)
			}
		}
	}

	// Captures (including promotion captures).
	capturers := pawns
	for capturers != 0 {
		from := capturers.PopLSB()
		targets := PawnAttacks(from, us) & enemies & checkMask
		for targets != 0 {
			to := targets.PopLSB()
			if pinned.IsSet(from) && !Line(ksq, from).IsSet(to) {
				continue
			}
			if promotionRank.IsSet(to) {
				addPromotions(ml, from, to)
			} else {
				ml.Add(NewMove(from, to))
			}
		}
	}

	// En passant.
	if p.EnPassant != NoSquare {
		epSq := p.EnPassant
		capturers := PawnAttacks(epSq, them) & pawns
		for capturers != 0 {
			from := capturers.PopLSB()

			var capSq Square
			if us == White {
				capSq = epSq - 8
			} else {
				capSq = epSq + 8
			}

			if !checkMask.IsSet(epSq) && !checkMask.IsSet(capSq) {
				continue
			}
			if pinned.IsSet(from) && !Line(ksq, from).IsSet(epSq) {
				continue
			}

			// Discovered-check check: removing both pawns from the rank can
			// expose the king to a rook/queen behind them.
			afterOcc := (occupied &^ SquareBB(from) &^ SquareBB(capSq)) | SquareBB(epSq)
			theirRookQueen := (p.Pieces[them][Rook] | p.Pieces[them][Queen])
			if RookAttacks(ksq, afterOcc)&theirRookQueen != 0 {
				continue
			}

			ml.Add(NewEnPassant(from, epSq))
		}
	}
}

// addPromotions adds all four promotion moves.
func addPromotions(ml *MoveList, from, to Square) {
	ml.Add(NewPromotion(from, to, Queen))
	ml.Add(NewPromotion(from, to, Rook))
	ml.Add(NewPromotion(from, to, Bishop))
	ml.Add(NewPromotion(from, to, Knight))
}

// genKnights generates legal knight moves. A pinned knight can never move:
// no L-shaped step stays on the pin ray.
func (p *Position) genKnights(ml *MoveList, ksq Square, pinned, checkMask Bitboard, capturesOnly bool) {
	us := p.SideToMove
	friendly := p.Occupied[us]
	knights := p.Pieces[us][Knight]

	for knights != 0 {
		from := knights.PopLSB()
		if pinned.IsSet(from) {
			continue
		}
		targets := KnightAttacks(from) & ^friendly & checkMask
		if capturesOnly {
			targets &= p.Occupied[us.Other()]
		}
		for targets != 0 {
			to := targets.PopLSB()
			ml.Add(NewMove(from, to))
		}
	}
}

// genSliders generates legal bishop, rook, and queen moves.
func (p *Position) genSliders(ml *MoveList, ksq Square, pinned, checkMask Bitboard, capturesOnly bool) {
	us := p.SideToMove
	friendly := p.Occupied[us]
	enemy := p.Occupied[us.Other()]
	occupied := p.AllOccupied

	genOne := func(pt PieceType, attacksFn func(Square, Bitboard) Bitboard) {
		pieces := p.Pieces[us][pt]
		for pieces != 0 {
			from := pieces.PopLSB()
			targets := attacksFn(from, occupied) & ^friendly & checkMask
			if pinned.IsSet(from) {
				targets &= Line(ksq, from)
			}
			if capturesOnly {
				targets &= enemy
			}
			for targets != 0 {
				to := targets.PopLSB()
				ml.Add(NewMove(from, to))
			}
		}
	}

	genOne(Bishop, BishopAttacks)
	genOne(Rook, RookAttacks)
	genOne(Queen, QueenAttacks)
}

// genKing generates legal king moves, including castling.
func (p *Position) genKing(ml *MoveList, ksq Square, capturesOnly bool) {
	us := p.SideToMove
	them := us.Other()
	friendly := p.Occupied[us]
	// See through the king: a slider cannot be blocked by the square the
	// king is vacating.
	occupiedNoKing := p.AllOccupied &^ SquareBB(ksq)

	targets := KingAttacks(ksq) & ^friendly
	if capturesOnly {
		targets &= p.Occupied[them]
	}
	for targets != 0 {
		to := targets.PopLSB()
		if p.AttackersByColor(to, them, occupiedNoKing) == 0 {
			ml.Add(NewMove(ksq, to))
		}
	}

	if capturesOnly {
		return
	}

	// Castling is only legal when not currently in check.
	if p.Checkers != 0 {
		return
	}

	occupied := p.AllOccupied
	if us == White {
		if p.CastlingRights&WhiteKingSideCastle != 0 &&
			occupied&((1<<F1)|(1<<G1)) == 0 &&
			p.AttackersByColor(F1, them, occupied) == 0 &&
			p.AttackersByColor(G1, them, occupied) == 0 {
			ml.Add(NewCastling(E1, G1))
		}
		if p.CastlingRights&WhiteQueenSideCastle != 0 &&
			occupied&((1<<B1)|(1<<C1)|(1<<D1)) == 0 &&
			p.AttackersByColor(D1, them, occupied) == 0 &&
			p.AttackersByColor(C1, them, occupied) == 0 {
			ml.Add(NewCastling(E1, C1))
		}
	} else {
		if p.CastlingRights&BlackKingSideCastle != 0 &&
			occupied&((1<<F8)|(1<<G8)) == 0 &&
			p.AttackersByColor(F8, them, occupied) == 0 &&
			p.AttackersByColor(G8, them, occupied) == 0 {
			ml.Add(NewCastling(E8, G8))
		}
		if p.CastlingRights&BlackQueenSideCastle != 0 &&
			occupied&((1<<B8)|(1<<C8)|(1<<D8)) == 0 &&
			p.AttackersByColor(D8, them, occupied) == 0 &&
			p.AttackersByColor(C8, them, occupied) == 0 {
			ml.Add(NewCastling(E8, C8))
		}
	}
}

// MakeMove applies a move to the position and returns undo information.
func (p *Position) MakeMove(m Move) UndoInfo {
	undo := UndoInfo{
		CapturedPiece:  NoPiece,
		CastlingRights: p.CastlingRights,
		EnPassant:      p.EnPassant,
		HalfMoveClock:  p.HalfMoveClock,
		Hash:           p.Hash,
		PawnKey:        p.PawnKey,
		Checkers:       p.Checkers,
		Valid:          false,
	}

	us := p.SideToMove
	them := us.Other()
	from := m.From()
	to := m.To()
	piece := p.PieceAt(from)

	// Safety check - if no piece at from square, return without modifying position
	if piece == NoPiece {
		return undo
	}

	// Mark as valid since we have a piece and will apply the move
	undo.Valid = true
	pt := piece.Type()

	// Update hash for side to move
	p.Hash ^= zobristSideToMove

	// Update hash for castling rights (will be updated again below if they change)
	p.Hash ^= zobristCastling[p.CastlingRights]

	// Update hash for en passant
	if p.EnPassant != NoSquare {
		p.Hash ^= zobristEnPassant[p.EnPassant.File()]
	}

	// Clear en passant
	p.EnPassant = NoSquare

	// Handle captures
	if m.IsEnPassant() {
		// En passant capture
		var capturedSq Square
		if us == White {
			capturedSq = to - 8
		} else {
			capturedSq = to + 8
		}
		undo.CapturedPiece = p.removePiece(capturedSq)
		p.Hash ^= zobristPiece[them][Pawn][capturedSq]
		p.PawnKey ^= zobristPiece[them][Pawn][capturedSq]
	} else if captured := p.PieceAt(to); captured != NoPiece {
		// Normal capture
		undo.CapturedPiece = captured
		p.removePiece(to)
		p.Hash ^= zobristPiece[them][captured.Type()][to]
		if captured.Type() == Pawn {
			p.PawnKey ^= zobristPiece[them][Pawn][to]
		}
	}

	// Move the piece
	p.movePiece(from, to)
	p.Hash ^= zobristPiece[us][pt][from]
	p.Hash ^= zobristPiece[us][pt][to]
	if pt == Pawn {
		p.PawnKey ^= zobristPiece[us][Pawn][from]
		p.PawnKey ^= zobristPiece[us][Pawn][to]
	}

	// Handle promotion
	if m.IsPromotion() {
		promoPt := m.Promotion()
		// Remove pawn, add promoted piece
		p.Pieces[us][Pawn] &^= SquareBB(to)
		p.Pieces[us][promoPt] |= SquareBB(to)
		p.Hash ^= zobristPiece[us][Pawn][to]
		p.Hash ^= zobristPiece[us][promoPt][to]
		p.PawnKey ^= zobristPiece[us][Pawn][to]
	}

	// Handle castling
	if m.IsCastling() {
		var rookFrom, rookTo Square
		if to > from {
			// Kingside
			rookFrom = NewSquare(7, from.Rank())
			rookTo = NewSquare(5, from.Rank())
		} else {
			// Queenside
			rookFrom = NewSquare(0, from.Rank())
			rookTo = NewSquare(3, from.Rank())
		}
		p.movePiece(rookFrom, rookTo)
		p.Hash ^= zobristPiece[us][Rook][rookFrom]
		p.Hash ^= zobristPiece[us][Rook][rookTo]
	}

	// Update castling rights
	if pt == King {
		if us == White {
			p.CastlingRights &^= WhiteKingSideCastle | WhiteQueenSideCastle
		} else {
			p.CastlingRights &^= BlackKingSideCastle | BlackQueenSideCastle
		}
	}

	// Rook moves or captures affect castling
	if from == A1 || to == A1 {
		p.CastlingRights &^= WhiteQueenSideCastle
	}
	if from == H1 || to == H1 {
		p.CastlingRights &^= WhiteKingSideCastle
	}
	if from == A8 || to == A8 {
		p.CastlingRights &^= BlackQueenSideCastle
	}
	if from == H8 || to == H8 {
		p.CastlingRights &^= BlackKingSideCastle
	}

	// Update hash for new castling rights
	p.Hash ^= zobristCastling[p.CastlingRights]

	// Set en passant square for double pawn push
	if pt == Pawn && abs(int(to)-int(from)) == 16 {
		epSquare := Square((int(from) + int(to)) / 2)
		p.EnPassant = epSquare
		p.Hash ^= zobristEnPassant[epSquare.File()]
	}

	// Update half-move clock
	if pt == Pawn || undo.CapturedPiece != NoPiece {
		p.HalfMoveClock = 0
	} else {
		p.HalfMoveClock++
	}

	// Update full-move number
	if us == Black {
		p.FullMoveNumber++
	}

	// Switch side to move
	p.SideToMove = them

	// Update checkers
	p.UpdateCheckers()

	return undo
}

// UnmakeMove undoes a move using the stored undo information.
func (p *Position) UnmakeMove(m Move, undo UndoInfo) {
	them := p.SideToMove
	us := them.Other()
	from := m.From()
	to := m.To()

	// Restore state
	p.CastlingRights = undo.CastlingRights
	p.EnPassant = undo.EnPassant
	p.HalfMoveClock = undo.HalfMoveClock
	p.Hash = undo.Hash
	p.PawnKey = undo.PawnKey
	p.Checkers = undo.Checkers
	p.SideToMove = us

	if us == Black {
		p.FullMoveNumber--
	}

	// Handle promotion first (before moving piece back)
	if m.IsPromotion() {
		promoPt := m.Promotion()
		// Remove promoted piece, restore pawn
		p.Pieces[us][promoPt] &^= SquareBB(to)
		p.Pieces[us][Pawn] |= SquareBB(to)
	}

	// Move piece back
	p.movePiece(to, from)

	// Handle castling rook
	if m.IsCastling() {
		var rookFrom, rookTo Square
		if to > from {
			// Kingside
			rookFrom = NewSquare(7, from.Rank())
			rookTo = NewSquare(5, from.Rank())
		} else {
			// Queenside
			rookFrom = NewSquare(0, from.Rank())
			rookTo = NewSquare(3, from.Rank())
		}
		p.movePiece(rookTo, rookFrom)
	}

	// Restore captured piece
	if undo.CapturedPiece != NoPiece {
		if m.IsEnPassant() {
			var capturedSq Square
			if us == White {
				capturedSq = to - 8
			} else {
				capturedSq = to + 8
			}
			p.setPiece(undo.CapturedPiece, capturedSq)
		} else {
			p.setPiece(undo.CapturedPiece, to)
		}
	}
}

// PseudoLegal reports whether m is a legal move in the current position.
// Used to validate a transposition table move before trusting it for move
// ordering or making it: a hash collision can hand back a move that was
// legal in a different position entirely.
func (p *Position) PseudoLegal(m Move) bool {
	if m == NoMove {
		return false
	}
	moves := p.GenerateLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		if moves.Get(i) == m {
			return true
		}
	}
	return false
}

// IsCheckmate returns true if the position is checkmate.
func (p *Position) IsCheckmate() bool {
	return p.InCheck() && !p.HasLegalMoves()
}

// IsStalemate returns true if the position is stalemate.
func (p *Position) IsStalemate() bool {
	return !p.InCheck() && !p.HasLegalMoves()
}

// IsDraw returns true if the position is a draw (stalemate, 50-move, insufficient material).
func (p *Position) IsDraw() bool {
	if p.IsStalemate() {
		return true
	}
	if p.HalfMoveClock >= 100 {
		return true
	}
	return p.IsInsufficientMaterial()
}

// IsInsufficientMaterial returns true if neither side can checkmate.
func (p *Position) IsInsufficientMaterial() bool {
	// If there are any pawns, rooks, or queens, sufficient material
	if p.Pieces[White][Pawn]|p.Pieces[Black][Pawn] != 0 ||
		p.Pieces[White][Rook]|p.Pieces[Black][Rook] != 0 ||
		p.Pieces[White][Queen]|p.Pieces[Black][Queen] != 0 {
		return false
	}

	// Count minor pieces
	wKnights := p.Pieces[White][Knight].PopCount()
	wBishops := p.Pieces[White][Bishop].PopCount()
	bKnights := p.Pieces[Black][Knight].PopCount()
	bBishops := p.Pieces[Black][Bishop].PopCount()

	// K vs K
	if wKnights+wBishops+bKnights+bBishops == 0 {
		return true
	}

	// K+minor vs K
	if wKnights+wBishops <= 1 && bKnights+bBishops == 0 {
		return true
	}
	if bKnights+bBishops <= 1 && wKnights+wBishops == 0 {
		return true
	}

	return false
}
