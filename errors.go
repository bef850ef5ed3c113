package argon2

import "fmt"

// InvalidParameterError reports a parameter that fails validation (§4.8/§7)
// before any hashing work is attempted: a construction-time cost parameter,
// a per-call salt shorter than 8 bytes, or an unknown profile name.
type InvalidParameterError struct {
	Field  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("argon2: invalid parameter %q: %s", e.Field, e.Reason)
}

// InvalidEncodingError reports an encoded hash string that does not match
// the grammar (§4.9/§6), or whose base64 fragments fail to decode.
type InvalidEncodingError struct {
	Reason string
}

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("argon2: invalid encoded hash: %s", e.Reason)
}

// UnsupportedTypeError reports a type name that typeFromName does not
// recognize. parseEncoded's grammar admits only argon2d/argon2i/argon2id, so
// an encoded string naming any other type fails the grammar first and is
// reported as *InvalidEncodingError instead.
type UnsupportedTypeError struct {
	Type string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("argon2: unsupported type %q", e.Type)
}

// UnsupportedVersionError reports an encoded hash string whose version is
// not 19 (0x13).
type UnsupportedVersionError struct {
	Version int
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("argon2: unsupported version %d, want 19", e.Version)
}
