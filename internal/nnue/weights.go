package nnue

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// expectedWeightsSize is the exact byte count spec.md §6 mandates for the
// weight blob: 768 feature-weight accumulators of i16[H], one bias
// accumulator, 2*H output weights, and one output bias - all little-endian,
// with no header. H=HiddenSize=128 per spec.md §1's (768 -> 128)x2 -> 1
// architecture.
const expectedWeightsSize = Chess768Size*2*HiddenSize + 2*HiddenSize + 2*2*HiddenSize + 2

// LoadWeights loads network weights from a binary file matching the blob
// layout above: no header, just the arrays back to back.
func (n *Network) LoadWeights(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open weights file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat weights file: %w", err)
	}
	if info.Size() != expectedWeightsSize {
		return fmt.Errorf("weights file size mismatch: expected %d bytes, got %d", expectedWeightsSize, info.Size())
	}

	return n.LoadWeightsFromReader(f)
}

// SaveWeights saves network weights to a binary file in the layout above.
func (n *Network) SaveWeights(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create weights file: %w", err)
	}
	defer f.Close()

	for i := 0; i < Chess768Size; i++ {
		if err := binary.Write(f, binary.LittleEndian, &n.FeatureWeights[i]); err != nil {
			return fmt.Errorf("failed to write feature weights at %d: %w", i, err)
		}
	}
	if err := binary.Write(f, binary.LittleEndian, &n.FeatureBias); err != nil {
		return fmt.Errorf("failed to write feature bias: %w", err)
	}
	if err := binary.Write(f, binary.LittleEndian, &n.OutputWeights); err != nil {
		return fmt.Errorf("failed to write output weights: %w", err)
	}
	if err := binary.Write(f, binary.LittleEndian, &n.OutputBias); err != nil {
		return fmt.Errorf("failed to write output bias: %w", err)
	}

	return nil
}

// LoadWeightsFromReader loads network weights from an io.Reader in the blob
// layout above (768 feature-weight accumulators, bias accumulator, 2*H
// output weights, output bias).
func (n *Network) LoadWeightsFromReader(r io.Reader) error {
	for i := 0; i < Chess768Size; i++ {
		if err := binary.Read(r, binary.LittleEndian, &n.FeatureWeights[i]); err != nil {
			return fmt.Errorf("failed to read feature weights at %d: %w", i, err)
		}
	}
	if err := binary.Read(r, binary.LittleEndian, &n.FeatureBias); err != nil {
		return fmt.Errorf("failed to read feature bias: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &n.OutputWeights); err != nil {
		return fmt.Errorf("failed to read output weights: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &n.OutputBias); err != nil {
		return fmt.Errorf("failed to read output bias: %w", err)
	}

	return nil
}
