package blake2b

import "github.com/r2unit/go-argon2/internal/codec"

// Long implements Argon2's variable-length hash H'(X, tau): it produces an
// output of any length by chaining BLAKE2b-512 calls when tau exceeds
// BLAKE2b's native 64-byte digest.
//
// For tau <= 64: H'(X, tau) = BLAKE2b(LE32(tau) || X, tau).
// For tau > 64: V1 = BLAKE2b(LE32(tau) || X, 64), Vi = BLAKE2b(Vi-1, 64) for
// i = 2..r where r = ceil(tau/32) - 2, and the output is the first 32 bytes
// of each Vi concatenated, followed by a final full-size BLAKE2b(Vr, tau -
// 32*r).
func Long(x []byte, tau int) []byte {
	if tau <= 0 {
		return nil
	}

	prefixed := codec.PutUint32(make([]byte, 0, 4+len(x)), uint32(tau))
	prefixed = append(prefixed, x...)

	if tau <= MaxSize {
		return sum(prefixed, tau)
	}

	out := make([]byte, 0, tau)
	v := sum(prefixed, MaxSize)
	out = append(out, v[:32]...)

	for len(out)+MaxSize < tau {
		v = sum(v, MaxSize)
		out = append(out, v[:32]...)
	}

	remaining := tau - len(out)
	v = sum(v, remaining)
	out = append(out, v...)

	return out
}
