package nnue

import "github.com/corvidchess/corvid/internal/board"

// Network holds the NNUE weights for the (768 -> HiddenSize)x2 -> 1
// architecture: one shared feature-weight matrix consumed from both
// perspectives, and a single output layer over the concatenated
// accumulators.
type Network struct {
	FeatureWeights [Chess768Size][HiddenSize]int16
	FeatureBias    [HiddenSize]int16

	// OutputWeights is laid out [us-half | them-half], HiddenSize each.
	OutputWeights [2 * HiddenSize]int16
	OutputBias    int16
}

// NewNetwork creates a network with zero weights (must load weights or init random).
func NewNetwork() *Network {
	return &Network{}
}

// Forward computes the network output given an accumulator.
// Returns evaluation in centipawns from the perspective of the side to move.
func (n *Network) Forward(acc *Accumulator, sideToMove board.Color) int {
	var us, them *[HiddenSize]int16
	if sideToMove == board.White {
		us, them = &acc.White, &acc.Black
	} else {
		us, them = &acc.Black, &acc.White
	}

	var sum int32
	for i := 0; i < HiddenSize; i++ {
		sum += screlu(us[i]) * int32(n.OutputWeights[i])
	}
	for i := 0; i < HiddenSize; i++ {
		sum += screlu(them[i]) * int32(n.OutputWeights[HiddenSize+i])
	}

	sum /= QA
	sum += int32(n.OutputBias)
	sum = sum * Scale / (QA * QB)

	return int(sum)
}

// InitRandom initializes weights with small random values (for testing only).
func (n *Network) InitRandom(seed int64) {
	// Use a simple LCG for reproducibility
	state := uint64(seed)
	next := func() int16 {
		state = state*6364136223846793005 + 1442695040888963407
		return int16((state >> 48) & 0xFF) - 128 // Small random values -128 to 127
	}

	for i := 0; i < Chess768Size; i++ {
		for j := 0; j < HiddenSize; j++ {
			n.FeatureWeights[i][j] = next() >> 3 // Small: -16 to 15
		}
	}

	for i := 0; i < HiddenSize; i++ {
		n.FeatureBias[i] = next() >> 3
	}

	for i := 0; i < 2*HiddenSize; i++ {
		n.OutputWeights[i] = next() >> 5 // Very small: -4 to 3
	}

	n.OutputBias = next()
}
