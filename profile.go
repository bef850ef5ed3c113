package argon2

import "github.com/r2unit/go-argon2/internal/config"

// NewFromProfile builds an Engine from a named cost-parameter preset (§4.11),
// applied to the given variant. Secret, AssociatedData, and Executor are left
// at their zero values; callers needing those should build Params directly.
func NewFromProfile(p config.Profile, typ Type) (*Engine, error) {
	return New(Params{
		HashLength:  p.HashLength,
		Parallelism: p.Parallelism,
		MemoryKiB:   p.MemoryKiB,
		Iterations:  p.Iterations,
		Type:        typ,
	})
}

// LoadEngine reads path for named profiles (§4.11's `[profiles.<name>]`
// tables) and constructs an Engine from the one called name, for the given
// variant. It is the one-call path from a deployment's TOML config to a
// ready-to-use Engine.
func LoadEngine(path, name string, typ Type) (*Engine, error) {
	profiles, err := config.LoadProfiles(path)
	if err != nil {
		return nil, err
	}
	p, ok := profiles[name]
	if !ok {
		return nil, &InvalidParameterError{Field: "name", Reason: "no such profile: " + name}
	}
	return NewFromProfile(p, typ)
}
