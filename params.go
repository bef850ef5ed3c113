// Package argon2 implements the Argon2 (version 19 / 0x13) memory-hard
// key-derivation function in its three variants - Argon2d, Argon2i, and
// Argon2id - built entirely from an in-repo BLAKE2b-512 primitive rather
// than delegating to an existing implementation.
package argon2

import (
	"github.com/r2unit/go-argon2/internal/address"
	"github.com/r2unit/go-argon2/internal/scheduler"
)

// Type identifies which Argon2 variant an engine runs.
type Type = address.Type

const (
	// TypeD is data-dependent addressing (Argon2d).
	TypeD = address.TypeD
	// TypeI is data-independent addressing (Argon2i).
	TypeI = address.TypeI
	// TypeID is hybrid addressing (Argon2id), the recommended default.
	TypeID = address.TypeID
)

// Version is the Argon2 algorithm version this package implements.
const Version = 19

const slicesPerPass = 4

// Params holds the immutable cost and shape parameters of one engine
// instance (§3, §6). Secret and AssociatedData are optional defaults baked
// into the engine; per-call values (message, salt) are never stored here.
type Params struct {
	HashLength     uint32
	Parallelism    uint32
	MemoryKiB      uint32
	Iterations     uint32
	Type           Type
	Secret         []byte
	AssociatedData []byte
	Executor       scheduler.Executor
}

// Validate checks Params against §4.8's pre-init rules, returning a distinct
// *InvalidParameterError identifying the first violation found. Salt length
// is a per-call property and is validated separately by Hash/HashEncoded.
func (p Params) Validate() error {
	if p.HashLength < 4 {
		return &InvalidParameterError{Field: "HashLength", Reason: "must be at least 4 bytes"}
	}
	if p.Parallelism < 1 {
		return &InvalidParameterError{Field: "Parallelism", Reason: "must be at least 1"}
	}
	if p.MemoryKiB < 8*p.Parallelism {
		return &InvalidParameterError{Field: "MemoryKiB", Reason: "must be at least 8 * Parallelism"}
	}
	if p.Iterations < 1 {
		return &InvalidParameterError{Field: "Iterations", Reason: "must be at least 1"}
	}
	return nil
}

// blockCount returns the total number of 1 KiB blocks in the matrix, after
// truncating MemoryKiB down to the nearest multiple of 4*Parallelism (§3).
func (p Params) blockCount() uint32 {
	quantum := 4 * p.Parallelism
	return p.MemoryKiB - (p.MemoryKiB % quantum)
}

// columnCount returns the number of columns per lane.
func (p Params) columnCount() uint32 {
	return p.blockCount() / p.Parallelism
}

// segmentLength returns the number of columns in one segment (a quarter of
// a lane).
func (p Params) segmentLength() uint32 {
	return p.columnCount() / slicesPerPass
}

func validateSalt(salt []byte) error {
	if len(salt) < 8 {
		return &InvalidParameterError{Field: "salt", Reason: "must be at least 8 bytes"}
	}
	return nil
}
