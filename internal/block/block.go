// Package block defines the 1024-byte memory block, the atomic unit of the
// Argon2 matrix, and the matrix itself.
package block

import (
	"fmt"

	"github.com/r2unit/go-argon2/internal/codec"
)

const (
	// Size is the byte size of one block (1024 bytes = 1 KiB).
	Size = 1024

	// Words is the number of uint64 words in a block (1024 / 8 = 128).
	Words = Size / 8
)

// Block is a 1024-byte Argon2 memory block represented as 128 little-endian
// uint64 words, per §3/§3.1. Value semantics (a plain array, not a slice) so
// assignment copies a block, matching the matrix-write discipline in §3
// ("written exactly once per pass").
type Block [Words]uint64

// XOR sets b to b XOR other, word-wise.
func (b *Block) XOR(other *Block) {
	for i := range b {
		b[i] ^= other[i]
	}
}

// Copy sets b to a copy of other's contents.
func (b *Block) Copy(other *Block) {
	*b = *other
}

// Zero clears every word of the block. Used for scratch reuse and for the
// best-effort matrix scrub on release (§4.10).
func (b *Block) Zero() {
	for i := range b {
		b[i] = 0
	}
}

// FromBytes decodes exactly Size bytes into the block.
func (b *Block) FromBytes(data []byte) error {
	if len(data) != Size {
		return &InvalidSizeError{Got: len(data), Want: Size}
	}
	words := codec.BytesToWords(data)
	copy(b[:], words)
	return nil
}

// ToBytes encodes the block into a new Size-byte slice.
func (b *Block) ToBytes() []byte {
	return codec.WordsToBytes(b[:])
}

// InvalidSizeError is returned when FromBytes receives a slice that is not
// exactly Size bytes.
type InvalidSizeError struct {
	Got, Want int
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("block: invalid size: got %d bytes, want %d", e.Got, e.Want)
}

// Matrix is the lane x column array of blocks, stored row-major: lane l,
// column c lives at index l*columnCount+c. A flat slice (rather than a
// slice-of-slices) keeps the whole matrix in one contiguous allocation, per
// the §5 memory model.
type Matrix struct {
	blocks      []Block
	columnCount int
	parallelism int
}

// NewMatrix allocates a zeroed matrix of the given shape.
func NewMatrix(parallelism, columnCount int) *Matrix {
	return &Matrix{
		blocks:      make([]Block, parallelism*columnCount),
		columnCount: columnCount,
		parallelism: parallelism,
	}
}

// ColumnCount returns the number of columns per lane.
func (m *Matrix) ColumnCount() int { return m.columnCount }

// Parallelism returns the number of lanes.
func (m *Matrix) Parallelism() int { return m.parallelism }

// At returns a pointer to the block at (lane, column) for in-place mutation.
func (m *Matrix) At(lane, column int) *Block {
	return &m.blocks[lane*m.columnCount+column]
}

// Zero overwrites every block in the matrix with zeros, adapted from the
// teacher's WipeMemory best-effort scrub (§4.10). It does not affect
// observable hashing behavior; it runs only after the tag has been derived.
func (m *Matrix) Zero() {
	for i := range m.blocks {
		m.blocks[i].Zero()
	}
}
