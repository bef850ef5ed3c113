// Package compress implements Argon2's compression function G, the
// 1024-byte -> 1024-byte permutation built from a modified BLAKE2b round
// (fBlaMka: the standard G mixing function plus a 64-bit low-word
// multiplication), applied row-wise then column-wise (§4.4).
package compress

import "github.com/r2unit/go-argon2/internal/block"

// indices lists the eight 4x4-submatrix index groups the round function P
// mixes, in order: four "columns" then four "diagonals" of the 4x4 view.
var indices = [8][4]int{
	{0, 4, 8, 12}, {1, 5, 9, 13}, {2, 6, 10, 14}, {3, 7, 11, 15},
	{0, 5, 10, 15}, {1, 6, 11, 12}, {2, 7, 8, 13}, {3, 4, 9, 14},
}

// columnGroups lists, for each of the eight column-pass groups, the 16
// word indices gathered into a 4x4 matrix per §4.4's column pass.
var columnGroups = [8][16]int{
	{0, 1, 16, 17, 32, 33, 48, 49, 64, 65, 80, 81, 96, 97, 112, 113},
	{2, 3, 18, 19, 34, 35, 50, 51, 66, 67, 82, 83, 98, 99, 114, 115},
	{4, 5, 20, 21, 36, 37, 52, 53, 68, 69, 84, 85, 100, 101, 116, 117},
	{6, 7, 22, 23, 38, 39, 54, 55, 70, 71, 86, 87, 102, 103, 118, 119},
	{8, 9, 24, 25, 40, 41, 56, 57, 72, 73, 88, 89, 104, 105, 120, 121},
	{10, 11, 26, 27, 42, 43, 58, 59, 74, 75, 90, 91, 106, 107, 122, 123},
	{12, 13, 28, 29, 44, 45, 60, 61, 76, 77, 92, 93, 108, 109, 124, 125},
	{14, 15, 30, 31, 46, 47, 62, 63, 78, 79, 94, 95, 110, 111, 126, 127},
}

// G computes the compression of x and y into dst. If withXOR is true, dst's
// existing contents are XORed into the result (the pass >= 1 accumulation
// rule of §3/§4.6); otherwise dst is overwritten.
func G(dst, x, y *block.Block, withXOR bool) {
	var r block.Block
	r.Copy(x)
	r.XOR(y)

	q := r // feed-forward value, R before permutation

	round(&r)

	r.XOR(&q)

	if withXOR {
		r.XOR(dst)
	}
	*dst = r
}

// round applies the Argon2 permutation P twice to r: once treating each of
// the eight 16-word row groups as a 4x4 matrix (row pass), once treating the
// eight column groups as a 4x4 matrix (column pass).
func round(r *block.Block) {
	for i := 0; i < 8; i++ {
		v := r[i*16 : i*16+16]
		p(v)
	}

	var gathered [8][16]uint64
	for g := 0; g < 8; g++ {
		for i, idx := range columnGroups[g] {
			gathered[g][i] = r[idx]
		}
	}
	for g := 0; g < 8; g++ {
		p(gathered[g][:])
	}
	for g := 0; g < 8; g++ {
		for i, idx := range columnGroups[g] {
			r[idx] = gathered[g][i]
		}
	}
}

// p applies the round function P: eight calls of the mixing function f
// across the index groups in `indices`, in place on the 16-word slice v.
func p(v []uint64) {
	for _, idx := range indices {
		a, b, c, d := idx[0], idx[1], idx[2], idx[3]
		v[a], v[b], v[c], v[d] = f(v[a], v[b], v[c], v[d])
	}
}

// f is the Argon2 mixing function (BLAKE2b's G augmented with fBlaMka's
// 64-bit low-word multiplication), per §4.4.
func f(a, b, c, d uint64) (uint64, uint64, uint64, uint64) {
	a = a + b + 2*mul32(a, b)
	d = rotr64(d^a, 32)
	c = c + d + 2*mul32(c, d)
	b = rotr64(b^c, 24)

	a = a + b + 2*mul32(a, b)
	d = rotr64(d^a, 16)
	c = c + d + 2*mul32(c, d)
	b = rotr64(b^c, 63)

	return a, b, c, d
}

func mul32(a, b uint64) uint64 {
	return uint64(uint32(a)) * uint64(uint32(b))
}

func rotr64(x uint64, n uint) uint64 {
	return (x >> n) | (x << (64 - n))
}
