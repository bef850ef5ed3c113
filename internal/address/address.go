// Package address implements Argon2's three pseudo-random addressing
// strategies (§4.5): the data-dependent generator used by Argon2d, the
// data-independent generator used by Argon2i, and the hybrid switching rule
// used by Argon2id. Each is modeled as the same small capability set - a
// tagged variant, since Go has no closed sum types - matching the §9 design
// note.
package address

import (
	"github.com/r2unit/go-argon2/internal/block"
	"github.com/r2unit/go-argon2/internal/compress"
)

// Type identifies which of the three Argon2 variants an engine runs.
type Type uint32

const (
	// TypeD is data-dependent addressing (Argon2d).
	TypeD Type = 0
	// TypeI is data-independent addressing (Argon2i).
	TypeI Type = 1
	// TypeID is hybrid addressing (Argon2id).
	TypeID Type = 2
)

// String returns the canonical lowercase spelling used in the encoded hash
// format (§4.9, §9 open question): "argon2d", "argon2i", "argon2id".
func (t Type) String() string {
	switch t {
	case TypeD:
		return "argon2d"
	case TypeI:
		return "argon2i"
	case TypeID:
		return "argon2id"
	default:
		return "argon2?"
	}
}

// refillPeriod is how many positions one address-block refill serves.
const refillPeriod = 128

// Generator is the per-segment pseudo-random index source. A fresh Generator
// is created for every (pass, lane, slice) segment - per §3 the generator
// state lives "per lane, per pass-slice" - so the data-independent counter
// legitimately starts at zero each time.
type Generator interface {
	// Next returns J, the 64-bit addressing value for the position `index`
	// within the current segment (0-based, as used by the Segment
	// Processor); prevColumn is that position's predecessor column, used
	// only by the data-dependent strategy.
	Next(index, prevColumn uint32) uint64
}

// DataDependentGenerator reads J directly from the lane's own matrix row
// (Argon2d, §4.5).
type DataDependentGenerator struct {
	matrix *block.Matrix
	lane   uint32
}

// NewDataDependent builds a data-dependent generator bound to one lane of
// matrix.
func NewDataDependent(matrix *block.Matrix, lane uint32) *DataDependentGenerator {
	return &DataDependentGenerator{matrix: matrix, lane: lane}
}

// Next returns the first word of the lane's block at prevColumn.
func (g *DataDependentGenerator) Next(index, prevColumn uint32) uint64 {
	return g.matrix.At(int(g.lane), int(prevColumn))[0]
}

// DataIndependentGenerator derives J from a counter-driven input block run
// through the compression function, independent of any matrix contents
// (Argon2i, §4.5). The 128-word address block it produces is refreshed
// every 128 positions.
type DataIndependentGenerator struct {
	input       block.Block
	address     block.Block
	counter     uint64
	initialized bool
}

// NewDataIndependent builds a data-independent generator for one segment.
// totalBlocks is the matrix's total block count, iterations is the
// configured pass count, and typeValue is the engine's type value (§6).
func NewDataIndependent(pass, lane, slice, totalBlocks, iterations uint32, typeValue Type) *DataIndependentGenerator {
	g := &DataIndependentGenerator{}
	g.input[0] = uint64(pass)
	g.input[1] = uint64(lane)
	g.input[2] = uint64(slice)
	g.input[3] = uint64(totalBlocks)
	g.input[4] = uint64(iterations)
	g.input[5] = uint64(typeValue)
	return g
}

// Next returns addressBlock[index % 128], refilling the address block first
// when required: on the very first call for this segment (regardless of
// index, since pass-0 slice-0 segments start at index 2), and whenever index
// is a multiple of 128 thereafter.
func (g *DataIndependentGenerator) Next(index, prevColumn uint32) uint64 {
	if !g.initialized || index%refillPeriod == 0 {
		g.refill()
		g.initialized = true
	}
	return g.address[index%refillPeriod]
}

// refill implements the two-compression derivation from §4.5:
// tmp = G(zero, input); addressBlock = G(zero, tmp).
func (g *DataIndependentGenerator) refill() {
	g.counter++
	g.input[6] = g.counter

	var zero, tmp block.Block
	compress.G(&tmp, &zero, &g.input, false)
	compress.G(&g.address, &zero, &tmp, false)
}

// HybridGenerator implements Argon2id's switching rule: data-independent
// addressing during pass 0 slices 0 and 1, data-dependent addressing from
// pass 0 slice 2 onward (§4.5). Since a Generator is constructed fresh per
// segment, the switch is realized by choosing the inner strategy at
// construction time; HybridGenerator still holds that inner Generator across
// the segment's lifetime, per the §9 design note.
type HybridGenerator struct {
	inner Generator
}

// NewHybrid builds the generator for one (pass, lane, slice) segment under
// Argon2id's addressing rule.
func NewHybrid(matrix *block.Matrix, pass, lane, slice, totalBlocks, iterations uint32) *HybridGenerator {
	h := &HybridGenerator{}
	if pass == 0 && slice < 2 {
		h.inner = NewDataIndependent(pass, lane, slice, totalBlocks, iterations, TypeID)
	} else {
		h.inner = NewDataDependent(matrix, lane)
	}
	return h
}

// Next delegates to the active inner generator.
func (h *HybridGenerator) Next(index, prevColumn uint32) uint64 {
	return h.inner.Next(index, prevColumn)
}

// New builds the correct Generator variant for typ, for the given segment
// coordinates.
func New(typ Type, matrix *block.Matrix, pass, lane, slice, totalBlocks, iterations uint32) Generator {
	switch typ {
	case TypeD:
		return NewDataDependent(matrix, lane)
	case TypeI:
		return NewDataIndependent(pass, lane, slice, totalBlocks, iterations, typ)
	case TypeID:
		return NewHybrid(matrix, pass, lane, slice, totalBlocks, iterations)
	default:
		panic("address: unknown type")
	}
}
