// Package config loads named cost-parameter presets from a TOML file, so a
// deployment can tune Argon2 cost parameters without a recompile (§4.11).
// It is additive: engines are always constructible purely from explicit
// parameters without touching a file.
package config

import "github.com/r2unit/go-argon2/internal/toml"

// Profile is one named cost-parameter preset, matching the fields of the
// engine's own Params.
type Profile struct {
	HashLength  uint32 `toml:"hash_length"`
	Parallelism uint32 `toml:"parallelism"`
	MemoryKiB   uint32 `toml:"memory_kib"`
	Iterations  uint32 `toml:"iterations"`
}

// tablePrefix is the top-level TOML table every profile lives under:
// `[profiles.<name>]`.
const tablePrefix = "profiles"

// LoadProfiles reads path and returns every `[profiles.<name>]` table found,
// keyed by <name>.
func LoadProfiles(path string) (map[string]Profile, error) {
	data, err := toml.DecodeFile(path)
	if err != nil {
		return nil, err
	}

	tables := toml.TablesWithPrefix(data, tablePrefix)
	profiles := make(map[string]Profile, len(tables))
	for name, table := range tables {
		var p Profile
		if err := toml.Unmarshal(table, &p); err != nil {
			return nil, err
		}
		profiles[name] = p
	}
	return profiles, nil
}
