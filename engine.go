package argon2

import (
	"context"
	"crypto/subtle"

	"github.com/r2unit/go-argon2/internal/address"
	"github.com/r2unit/go-argon2/internal/blake2b"
	"github.com/r2unit/go-argon2/internal/block"
	"github.com/r2unit/go-argon2/internal/codec"
	"github.com/r2unit/go-argon2/internal/scheduler"
	"github.com/r2unit/go-argon2/internal/segment"
)

// Engine is one configured Argon2 instance. It is safe to reuse across many
// Hash/Verify calls with different messages and salts; Params are immutable
// for the engine's lifetime.
type Engine struct {
	params Params
}

// New validates params and returns a ready-to-use Engine, or the first
// *InvalidParameterError found (§4.8).
func New(params Params) (*Engine, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Engine{params: params}, nil
}

// Hash derives a tag for (message, salt, secret, associatedData) per §6. A
// nil secret or associatedData falls back to the engine's construction-time
// default (Params.Secret/Params.AssociatedData), letting one engine serve
// many calls with different peppers or contexts. It is a convenience
// wrapper over HashContext with a background context.
func (e *Engine) Hash(message, salt, secret, associatedData []byte) ([]byte, error) {
	return e.HashContext(context.Background(), message, salt, secret, associatedData)
}

// HashContext derives a tag for (message, salt, secret, associatedData),
// honoring ctx cancellation at slice barriers (§5.1).
func (e *Engine) HashContext(ctx context.Context, message, salt, secret, associatedData []byte) ([]byte, error) {
	if err := validateSalt(salt); err != nil {
		return nil, err
	}
	return e.run(ctx, message, salt, secret, associatedData)
}

// HashEncoded derives a tag and formats it per §4.9.
func (e *Engine) HashEncoded(message, salt, secret, associatedData []byte) (string, error) {
	return e.HashEncodedContext(context.Background(), message, salt, secret, associatedData)
}

// HashEncodedContext is HashContext followed by encode.
func (e *Engine) HashEncodedContext(ctx context.Context, message, salt, secret, associatedData []byte) (string, error) {
	tag, err := e.HashContext(ctx, message, salt, secret, associatedData)
	if err != nil {
		return "", err
	}
	return encode(e.params.Type, e.params, salt, tag), nil
}

// Verify recomputes the tag for (message, salt, secret, associatedData) and
// compares it against expectedTag in constant time (§6/§7).
func (e *Engine) Verify(expectedTag, message, salt, secret, associatedData []byte) (bool, error) {
	tag, err := e.Hash(message, salt, secret, associatedData)
	if err != nil {
		return false, err
	}
	if len(tag) != len(expectedTag) {
		return false, nil
	}
	return subtle.ConstantTimeCompare(tag, expectedTag) == 1, nil
}

// VerifyEncoded reconstructs an engine's parameters from an encoded hash
// string and checks message against it (§6, static operation). secret and
// associatedData are supplied by the caller, exactly as with Verify,
// because the encoded grammar (§4.9) never carries them - they cannot be
// recovered from the string itself.
func VerifyEncoded(encoded string, message, secret, associatedData []byte) (bool, error) {
	d, err := parseEncoded(encoded)
	if err != nil {
		return false, err
	}

	eng, err := New(d.Params)
	if err != nil {
		return false, err
	}
	return eng.Verify(d.Tag, message, d.Salt, secret, associatedData)
}

// run implements §4.8 end to end: entropy assembly, H0, block-matrix
// initialization, the scheduler sweep, the final fold, and tag derivation.
func (e *Engine) run(ctx context.Context, message, salt, secret, associatedData []byte) ([]byte, error) {
	p := e.params
	p.Secret = fallback(secret, p.Secret)
	p.AssociatedData = fallback(associatedData, p.AssociatedData)

	h0 := computeH0(p, message, salt)

	matrix := block.NewMatrix(int(p.Parallelism), int(p.columnCount()))
	defer matrix.Zero()

	for lane := uint32(0); lane < p.Parallelism; lane++ {
		seedLaneHead(matrix, h0, lane)
	}

	exec := p.Executor
	if exec == nil {
		exec = scheduler.Default(p.Parallelism)
	}

	segmentLength := p.segmentLength()
	columnCount := p.columnCount()
	blockCount := p.blockCount()

	err := scheduler.Run(ctx, exec, p.Iterations, p.Parallelism, func(pass, slice, lane uint32) {
		gen := address.New(p.Type, matrix, pass, lane, slice, blockCount, p.Iterations)
		segment.Process(segment.Params{
			Matrix:        matrix,
			Generator:     gen,
			Pass:          pass,
			Slice:         slice,
			Lane:          lane,
			Parallelism:   p.Parallelism,
			SegmentLength: segmentLength,
			ColumnCount:   columnCount,
		})
	})
	if err != nil {
		return nil, err
	}

	var final block.Block
	for lane := uint32(0); lane < p.Parallelism; lane++ {
		final.XOR(matrix.At(int(lane), int(columnCount-1)))
	}

	return blake2b.Long(final.ToBytes(), int(p.HashLength)), nil
}

// computeH0 assembles the entropy buffer and hashes it (§4.8). The memory
// field is the truncated block count, so a MemoryKiB that is not a multiple
// of 4*Parallelism hashes the same as its truncated value.
func computeH0(p Params, message, salt []byte) []byte {
	var buf []byte
	buf = codec.PutUint32(buf, p.Parallelism)
	buf = codec.PutUint32(buf, p.HashLength)
	buf = codec.PutUint32(buf, p.blockCount())
	buf = codec.PutUint32(buf, p.Iterations)
	buf = codec.PutUint32(buf, Version)
	buf = codec.PutUint32(buf, uint32(p.Type))

	buf = appendLengthPrefixed(buf, message)
	buf = appendLengthPrefixed(buf, salt)
	buf = appendLengthPrefixed(buf, p.Secret)
	buf = appendLengthPrefixed(buf, p.AssociatedData)

	return blake2b.Sum512(buf)
}

func appendLengthPrefixed(buf, data []byte) []byte {
	buf = codec.PutUint32(buf, uint32(len(data)))
	return append(buf, data...)
}

// fallback returns override when the caller supplied one, else def (the
// engine's construction-time default).
func fallback(override, def []byte) []byte {
	if override != nil {
		return override
	}
	return def
}

// seedLaneHead fills B[lane][0] and B[lane][1] per §4.8.
func seedLaneHead(matrix *block.Matrix, h0 []byte, lane uint32) {
	for column := uint32(0); column < 2; column++ {
		var input []byte
		input = append(input, h0...)
		input = codec.PutUint32(input, column)
		input = codec.PutUint32(input, lane)

		seed := blake2b.Long(input, block.Size)
		_ = matrix.At(int(lane), int(column)).FromBytes(seed)
	}
}
