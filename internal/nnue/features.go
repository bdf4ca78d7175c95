package nnue

import "github.com/corvidchess/corvid/internal/board"

// chess768Index computes the feature index for a piece from a perspective.
// idx = color_offset + kind*64 + sq_idx, where color_offset is 0 if the
// piece's color matches the perspective else 384, and sq_idx is the
// square's index for White's perspective or its vertical mirror (sq^56)
// for Black's.
func chess768Index(perspective board.Color, pieceColor board.Color, pieceKind board.PieceType, sq board.Square) int {
	colorOffset := 0
	if pieceColor != perspective {
		colorOffset = 384
	}

	sqIdx := int(sq)
	if perspective == board.Black {
		sqIdx = int(sq.Mirror())
	}

	return colorOffset + int(pieceKind)*NumSquares + sqIdx
}

// GetActiveFeatures returns all active Chess768 feature indices for a
// position from both perspectives.
func GetActiveFeatures(pos *board.Position) (white, black []int) {
	white = make([]int, 0, 32)
	black = make([]int, 0, 32)

	for color := board.White; color <= board.Black; color++ {
		for pt := board.Pawn; pt <= board.King; pt++ {
			pieces := pos.Pieces[color][pt]
			for pieces != 0 {
				sq := pieces.PopLSB()
				white = append(white, chess768Index(board.White, color, pt, sq))
				black = append(black, chess768Index(board.Black, color, pt, sq))
			}
		}
	}

	return white, black
}

// GetChangedFeatures returns the features that need to be added/removed for
// a move, from both perspectives. Should be called with pos reflecting the
// position AFTER the move has been made.
// Returns: (whiteAdded, whiteRemoved, blackAdded, blackRemoved)
func GetChangedFeatures(pos *board.Position, m board.Move, captured board.Piece) (
	whiteAdd, whiteRem, blackAdd, blackRem []int) {

	from := m.From()
	to := m.To()
	movedPiece := pos.PieceAt(to) // Piece after the move was made

	if movedPiece == board.NoPiece {
		return // Invalid state
	}

	movingColor := movedPiece.Color()

	// Remove feature for the piece at its old square (from). A promotion
	// removes the pawn that stood there, not the promoted piece.
	oldPT := movedPiece.Type()
	if m.IsPromotion() {
		oldPT = board.Pawn
	}
	whiteRem = append(whiteRem, chess768Index(board.White, movingColor, oldPT, from))
	blackRem = append(blackRem, chess768Index(board.Black, movingColor, oldPT, from))

	// Add feature for the piece at its new square (to), using the
	// promoted kind when applicable.
	whiteAdd = append(whiteAdd, chess768Index(board.White, movingColor, movedPiece.Type(), to))
	blackAdd = append(blackAdd, chess768Index(board.Black, movingColor, movedPiece.Type(), to))

	// Handle capture.
	if captured != board.NoPiece {
		capturedPT := captured.Type()
		capturedColor := captured.Color()
		capturedSq := to // Normal capture

		if m.IsEnPassant() {
			if movingColor == board.White {
				capturedSq = to - 8
			} else {
				capturedSq = to + 8
			}
		}

		whiteRem = append(whiteRem, chess768Index(board.White, capturedColor, capturedPT, capturedSq))
		blackRem = append(blackRem, chess768Index(board.Black, capturedColor, capturedPT, capturedSq))
	}

	// Castling also relocates the rook.
	if m.IsCastling() {
		var rookFrom, rookTo board.Square
		rank := from.Rank()
		if to > from {
			rookFrom = board.NewSquare(7, rank)
			rookTo = board.NewSquare(5, rank)
		} else {
			rookFrom = board.NewSquare(0, rank)
			rookTo = board.NewSquare(3, rank)
		}
		whiteRem = append(whiteRem, chess768Index(board.White, movingColor, board.Rook, rookFrom))
		blackRem = append(blackRem, chess768Index(board.Black, movingColor, board.Rook, rookFrom))
		whiteAdd = append(whiteAdd, chess768Index(board.White, movingColor, board.Rook, rookTo))
		blackAdd = append(blackAdd, chess768Index(board.Black, movingColor, board.Rook, rookTo))
	}

	return
}
