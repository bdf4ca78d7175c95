// Package nnue implements NNUE (Efficiently Updatable Neural Network) evaluation.
package nnue

import "github.com/corvidchess/corvid/internal/board"

// Network architecture constants.
const (
	// Chess768 feature dimensions: one feature per (perspective-relative
	// color, piece kind, square) triple, 2*6*64 = 768.
	NumColors    = 2
	NumKinds     = 6
	NumSquares   = 64
	Chess768Size = NumColors * NumKinds * NumSquares

	// HiddenSize is the single hidden layer width (the "H" in the
	// (768 -> H)x2 -> 1 architecture). spec.md §1 pins this at 128.
	HiddenSize = 128

	// Quantization constants.
	QA    = 255
	QB    = 64
	Scale = 400
)

// screlu applies the squared clipped ReLU activation used by the forward
// pass: clamp(x, 0, QA)^2.
func screlu(x int16) int32 {
	v := int32(x)
	if v < 0 {
		v = 0
	} else if v > QA {
		v = QA
	}
	return v * v
}

// Evaluator is the main NNUE evaluator interface.
type Evaluator struct {
	net   *Network
	stack *AccumulatorStack
}

// NewEvaluator creates a new NNUE evaluator.
// If weightsFile is empty, uses random weights for testing.
func NewEvaluator(weightsFile string) (*Evaluator, error) {
	net := NewNetwork()

	if weightsFile != "" {
		if err := net.LoadWeights(weightsFile); err != nil {
			return nil, err
		}
	} else {
		net.InitRandom(12345) // For testing only
	}

	return &Evaluator{
		net:   net,
		stack: NewAccumulatorStack(),
	}, nil
}

// NewEvaluatorFromNetwork builds an Evaluator with its own accumulator stack
// sharing an already-loaded Network. The Network is read-only after loading,
// so it is safe to share across evaluators used by concurrent search workers;
// each worker still needs its own accumulator stack.
func NewEvaluatorFromNetwork(net *Network) *Evaluator {
	return &Evaluator{
		net:   net,
		stack: NewAccumulatorStack(),
	}
}

// Network returns the underlying weights, for sharing with other evaluators.
func (e *Evaluator) Network() *Network {
	return e.net
}

// Evaluate returns NNUE evaluation for the position.
// Returns score in centipawns from side to move's perspective.
func (e *Evaluator) Evaluate(pos *board.Position) int {
	acc := e.stack.Current()
	if !acc.Computed {
		acc.ComputeFull(pos, e.net)
	}
	return e.net.Forward(acc, pos.SideToMove)
}

// Push saves accumulator state (call before MakeMove).
func (e *Evaluator) Push() {
	e.stack.Push()
}

// Pop restores accumulator state (call after UnmakeMove).
func (e *Evaluator) Pop() {
	e.stack.Pop()
}

// Refresh forces a full recomputation of the accumulator.
func (e *Evaluator) Refresh(pos *board.Position) {
	e.stack.Current().ComputeFull(pos, e.net)
}

// Update updates the accumulator incrementally for a move.
// Should be called after MakeMove.
func (e *Evaluator) Update(pos *board.Position, m board.Move, captured board.Piece) {
	e.stack.Current().UpdateIncremental(pos, m, captured, e.net)
}

// Reset resets the accumulator stack (for new game).
func (e *Evaluator) Reset() {
	e.stack.Reset()
}
