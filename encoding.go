package argon2

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strconv"

	"github.com/r2unit/go-argon2/internal/address"
)

// encodedGrammar is the exact grammar from §6: type name, version, cost
// parameters, base64 salt, base64 tag.
var encodedGrammar = regexp.MustCompile(
	`^\$(argon2d|argon2i|argon2id)\$v=(\d+)\$m=(\d+),t=(\d+),p=(\d+)\$([A-Za-z0-9+/]+)\$([A-Za-z0-9+/]+)$`,
)

var rawEncoding = base64.RawStdEncoding

// encode produces the canonical encoded hash string (§4.9).
func encode(typ Type, params Params, salt, tag []byte) string {
	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		typ.String(), Version, params.MemoryKiB, params.Iterations, params.Parallelism,
		rawEncoding.EncodeToString(salt), rawEncoding.EncodeToString(tag))
}

// decoded holds everything parseEncoded recovers from an encoded string.
type decoded struct {
	Type   Type
	Params Params
	Salt   []byte
	Tag    []byte
}

// parseEncoded parses an encoded hash string per §4.9/§6. A grammar
// deviation (including a type name other than argon2d/argon2i/argon2id,
// which the grammar does not admit) or a bad base64 fragment yields
// *InvalidEncodingError; a version other than 19 yields
// *UnsupportedVersionError.
func parseEncoded(encoded string) (*decoded, error) {
	m := encodedGrammar.FindStringSubmatch(encoded)
	if m == nil {
		return nil, &InvalidEncodingError{Reason: "does not match the expected grammar"}
	}

	typeName, versionStr, memStr, iterStr, parStr, saltStr, tagStr := m[1], m[2], m[3], m[4], m[5], m[6], m[7]

	typ, err := typeFromName(typeName)
	if err != nil {
		return nil, err
	}

	version, err := strconv.Atoi(versionStr)
	if err != nil {
		return nil, &InvalidEncodingError{Reason: "version is not a valid integer"}
	}
	if version != Version {
		return nil, &UnsupportedVersionError{Version: version}
	}

	memoryKiB, err := parseUint32(memStr, "m")
	if err != nil {
		return nil, err
	}
	iterations, err := parseUint32(iterStr, "t")
	if err != nil {
		return nil, err
	}
	parallelism, err := parseUint32(parStr, "p")
	if err != nil {
		return nil, err
	}

	salt, err := rawEncoding.DecodeString(saltStr)
	if err != nil {
		return nil, &InvalidEncodingError{Reason: "salt is not valid base64"}
	}
	tag, err := rawEncoding.DecodeString(tagStr)
	if err != nil {
		return nil, &InvalidEncodingError{Reason: "tag is not valid base64"}
	}

	return &decoded{
		Type: typ,
		Params: Params{
			HashLength:  uint32(len(tag)),
			Parallelism: parallelism,
			MemoryKiB:   memoryKiB,
			Iterations:  iterations,
			Type:        typ,
		},
		Salt: salt,
		Tag:  tag,
	}, nil
}

func parseUint32(s, field string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, &InvalidEncodingError{Reason: fmt.Sprintf("%q is not a valid unsigned integer for %s", s, field)}
	}
	return uint32(n), nil
}

func typeFromName(name string) (Type, error) {
	switch name {
	case "argon2d":
		return address.TypeD, nil
	case "argon2i":
		return address.TypeI, nil
	case "argon2id":
		return address.TypeID, nil
	default:
		return 0, &UnsupportedTypeError{Type: name}
	}
}
