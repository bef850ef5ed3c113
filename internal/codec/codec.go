// Package codec converts between byte buffers and little-endian word arrays.
// It underpins every other component: the block matrix, H0, and H' all cross
// the byte/word boundary through these functions.
package codec

import "encoding/binary"

// BytesToWords decodes a byte slice into little-endian uint64 words. len(b)
// MUST be a multiple of 8.
func BytesToWords(b []byte) []uint64 {
	if len(b)%8 != 0 {
		panic("codec: byte length not a multiple of 8")
	}
	words := make([]uint64, len(b)/8)
	for i := range words {
		words[i] = binary.LittleEndian.Uint64(b[i*8:])
	}
	return words
}

// WordsToBytes encodes n little-endian uint64 words into 8*n bytes.
func WordsToBytes(words []uint64) []byte {
	b := make([]byte, len(words)*8)
	for i, w := range words {
		binary.LittleEndian.PutUint64(b[i*8:], w)
	}
	return b
}

// PutUint32 appends the little-endian encoding of v to dst and returns the
// grown slice, mirroring the teacher's inline binary.LittleEndian.PutUint32
// calls but centralized so every LE32 field in the entropy buffer (§4.8) goes
// through one place.
func PutUint32(dst []byte, v uint32) []byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	return append(dst, buf[:]...)
}

// Uint32 decodes a little-endian uint32 from the front of b.
func Uint32(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}
