// Package segment implements the Segment Processor (§4.6): the inner loop
// that fills one quarter of one lane, deriving each column's reference block
// via the address generator and folding it in with the compression function.
package segment

import (
	"github.com/r2unit/go-argon2/internal/address"
	"github.com/r2unit/go-argon2/internal/block"
	"github.com/r2unit/go-argon2/internal/compress"
)

// Params carries the fixed coordinates and matrix geometry one Process call
// needs; it does not change across the positions of a single segment.
type Params struct {
	Matrix        *block.Matrix
	Generator     address.Generator
	Pass          uint32
	Slice         uint32
	Lane          uint32
	Parallelism   uint32
	SegmentLength uint32
	ColumnCount   uint32
}

// Process fills every position of one (pass, lane, slice) segment, per §4.6.
// Positions 0 and 1 of pass 0 slice 0 are already seeded by engine
// initialization, so that segment's loop starts at index 2.
func Process(p Params) {
	startIndex := uint32(0)
	if p.Pass == 0 && p.Slice == 0 {
		startIndex = 2
	}

	for index := startIndex; index < p.SegmentLength; index++ {
		currentColumn := p.Slice*p.SegmentLength + index

		var prevColumn uint32
		if currentColumn == 0 {
			prevColumn = p.ColumnCount - 1
		} else {
			prevColumn = currentColumn - 1
		}

		j := p.Generator.Next(index, prevColumn)

		refLane := p.Lane
		if !(p.Pass == 0 && p.Slice == 0) {
			refLane = uint32(j>>32) % p.Parallelism
		}

		refColumn := referenceColumn(j, p.Pass, p.Slice, index, p.Lane, refLane, p.SegmentLength, p.ColumnCount)

		prev := p.Matrix.At(int(p.Lane), int(prevColumn))
		ref := p.Matrix.At(int(refLane), int(refColumn))
		dst := p.Matrix.At(int(p.Lane), int(currentColumn))

		compress.G(dst, prev, ref, p.Pass != 0)
	}
}

// referenceColumn implements §4.6 steps 5: the reference-area-size and
// quadratic-mapping computation that turns J into a column within the
// reference lane's already-finalized history.
func referenceColumn(j uint64, pass, slice, index, lane, refLane, segmentLength, columnCount uint32) uint32 {
	var startPos, sliceOffset uint32
	if pass == 0 {
		startPos = 0
		sliceOffset = slice * segmentLength
	} else {
		startPos = ((slice + 1) * segmentLength) % columnCount
		sliceOffset = columnCount - segmentLength
	}

	var refAreaSize uint32
	switch {
	case refLane == lane:
		refAreaSize = sliceOffset + index - 1
	case index == 0:
		refAreaSize = sliceOffset - 1
	default:
		refAreaSize = sliceOffset
	}

	x := j & 0xFFFFFFFF
	y := (x * x) >> 32
	z := (uint64(refAreaSize) * y) >> 32
	pos := uint64(refAreaSize) - 1 - z

	return (startPos + uint32(pos)) % columnCount
}
