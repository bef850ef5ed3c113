package segment

import (
	"testing"

	"github.com/r2unit/go-argon2/internal/address"
	"github.com/r2unit/go-argon2/internal/block"
)

func newTestMatrix(parallelism, columnCount int) *block.Matrix {
	m := block.NewMatrix(parallelism, columnCount)
	for lane := 0; lane < parallelism; lane++ {
		for col := 0; col < 2; col++ {
			b := m.At(lane, col)
			b[0] = uint64(lane)<<32 | uint64(col)
		}
	}
	return m
}

func TestProcessPass0Slice0StartsAtIndex2(t *testing.T) {
	columnCount := 16
	segmentLength := uint32(columnCount / 4)
	m := newTestMatrix(1, columnCount)

	gen := address.NewDataDependent(m, 0)
	Process(Params{
		Matrix:        m,
		Generator:     gen,
		Pass:          0,
		Slice:         0,
		Lane:          0,
		Parallelism:   1,
		SegmentLength: segmentLength,
		ColumnCount:   uint32(columnCount),
	})

	// Columns 0 and 1 are seeded externally and must be left untouched.
	if m.At(0, 0)[0] != 0 {
		t.Error("Process() touched column 0, which pass 0 slice 0 must leave alone")
	}
	if m.At(0, 1)[0] != 1 {
		t.Error("Process() touched column 1, which pass 0 slice 0 must leave alone")
	}

	// Columns 2..segmentLength-1 must have been written (no longer zero).
	for col := 2; col < int(segmentLength); col++ {
		zero := true
		for _, w := range m.At(0, col) {
			if w != 0 {
				zero = false
				break
			}
		}
		if zero {
			t.Errorf("column %d was not written by Process()", col)
		}
	}
}

func TestProcessIsDeterministic(t *testing.T) {
	columnCount := 16
	segmentLength := uint32(columnCount / 4)

	run := func() *block.Matrix {
		m := newTestMatrix(1, columnCount)
		gen := address.NewDataDependent(m, 0)
		Process(Params{
			Matrix:        m,
			Generator:     gen,
			Pass:          0,
			Slice:         0,
			Lane:          0,
			Parallelism:   1,
			SegmentLength: segmentLength,
			ColumnCount:   uint32(columnCount),
		})
		return m
	}

	a := run()
	b := run()
	for col := 0; col < columnCount; col++ {
		if *a.At(0, col) != *b.At(0, col) {
			t.Fatalf("column %d diverged between identical runs", col)
		}
	}
}

func TestProcessLaterPassXORsPreviousContents(t *testing.T) {
	columnCount := 16
	segmentLength := uint32(columnCount / 4)
	m := newTestMatrix(1, columnCount)

	gen := address.NewDataDependent(m, 0)

	// Fill pass 0 first: with an all-zero previous and reference block, G is
	// zero and the pass-1 XOR would leave column 0 as it was.
	for slice := uint32(0); slice < 4; slice++ {
		Process(Params{
			Matrix:        m,
			Generator:     gen,
			Pass:          0,
			Slice:         slice,
			Lane:          0,
			Parallelism:   1,
			SegmentLength: segmentLength,
			ColumnCount:   uint32(columnCount),
		})
	}

	params := Params{
		Matrix:        m,
		Generator:     gen,
		Pass:          1,
		Slice:         0,
		Lane:          0,
		Parallelism:   1,
		SegmentLength: segmentLength,
		ColumnCount:   uint32(columnCount),
	}

	before := *m.At(0, 0)
	Process(params)
	after := *m.At(0, 0)

	if before == after {
		t.Error("pass >= 1 did not change column 0's contents")
	}
}

func TestReferenceColumnStaysWithinBounds(t *testing.T) {
	columnCount := uint32(64)
	segmentLength := columnCount / 4

	for _, j := range []uint64{0, 1, 0xFFFFFFFF, 1 << 40, ^uint64(0)} {
		for pass := uint32(0); pass < 2; pass++ {
			for slice := uint32(0); slice < 4; slice++ {
				for index := uint32(0); index < segmentLength; index++ {
					col := referenceColumn(j, pass, slice, index, 0, 0, segmentLength, columnCount)
					if col >= columnCount {
						t.Fatalf("referenceColumn() = %d, out of bounds [0,%d)", col, columnCount)
					}
				}
			}
		}
	}
}
