package nnue

import "github.com/corvidchess/corvid/internal/board"

// Accumulator stores the accumulated hidden-layer values for incremental
// updates. Each side has its own accumulator from its perspective.
type Accumulator struct {
	White [HiddenSize]int16
	Black [HiddenSize]int16

	Computed bool
}

// AccumulatorStack manages accumulators during search.
type AccumulatorStack struct {
	stack [128]Accumulator // One per ply
	top   int
}

// NewAccumulatorStack creates a new accumulator stack.
func NewAccumulatorStack() *AccumulatorStack {
	return &AccumulatorStack{}
}

// Push saves current accumulator state.
func (s *AccumulatorStack) Push() {
	if s.top < 127 {
		s.stack[s.top+1] = s.stack[s.top]
		s.top++
	}
}

// Pop restores previous accumulator state.
func (s *AccumulatorStack) Pop() {
	if s.top > 0 {
		s.top--
	}
}

// Current returns the current accumulator.
func (s *AccumulatorStack) Current() *Accumulator {
	return &s.stack[s.top]
}

// Reset resets the stack to initial state.
func (s *AccumulatorStack) Reset() {
	s.top = 0
	s.stack[0].Computed = false
}

// ComputeFull computes the accumulator from scratch for a position:
// feature_bias + sum of feature_weights[idx] over every active feature.
func (acc *Accumulator) ComputeFull(pos *board.Position, net *Network) {
	whiteFeatures, blackFeatures := GetActiveFeatures(pos)

	copy(acc.White[:], net.FeatureBias[:])
	copy(acc.Black[:], net.FeatureBias[:])

	for _, idx := range whiteFeatures {
		for i := 0; i < HiddenSize; i++ {
			acc.White[i] += net.FeatureWeights[idx][i]
		}
	}

	for _, idx := range blackFeatures {
		for i := 0; i < HiddenSize; i++ {
			acc.Black[i] += net.FeatureWeights[idx][i]
		}
	}

	acc.Computed = true
}

// UpdateIncremental updates the accumulator incrementally for a move.
// This is the key efficiency optimization - O(changed pieces) instead of O(all pieces).
// Should be called AFTER the move has been made on the position. Chess768
// features are not king-relative, so even king moves and castling only
// touch the handful of features GetChangedFeatures reports.
func (acc *Accumulator) UpdateIncremental(pos *board.Position, m board.Move, captured board.Piece, net *Network) {
	if !acc.Computed {
		acc.ComputeFull(pos, net)
		return
	}

	if pos.PieceAt(m.To()) == board.NoPiece {
		acc.Computed = false
		return
	}

	whiteAdd, whiteRem, blackAdd, blackRem := GetChangedFeatures(pos, m, captured)

	for _, idx := range whiteRem {
		for i := 0; i < HiddenSize; i++ {
			acc.White[i] -= net.FeatureWeights[idx][i]
		}
	}
	for _, idx := range blackRem {
		for i := 0; i < HiddenSize; i++ {
			acc.Black[i] -= net.FeatureWeights[idx][i]
		}
	}

	for _, idx := range whiteAdd {
		for i := 0; i < HiddenSize; i++ {
			acc.White[i] += net.FeatureWeights[idx][i]
		}
	}
	for _, idx := range blackAdd {
		for i := 0; i < HiddenSize; i++ {
			acc.Black[i] += net.FeatureWeights[idx][i]
		}
	}
}
