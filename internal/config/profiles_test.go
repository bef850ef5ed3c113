package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadProfilesParsesNamedPresets(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "argon2.toml")
	contents := `
[profiles.interactive]
hash_length = 32
parallelism = 1
memory_kib = 19456
iterations = 2

[profiles.sensitive]
hash_length = 32
parallelism = 4
memory_kib = 65536
iterations = 4
`
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	profiles, err := LoadProfiles(path)
	if err != nil {
		t.Fatalf("LoadProfiles() error = %v", err)
	}

	interactive, ok := profiles["interactive"]
	if !ok {
		t.Fatal("missing profile \"interactive\"")
	}
	want := Profile{HashLength: 32, Parallelism: 1, MemoryKiB: 19456, Iterations: 2}
	if interactive != want {
		t.Errorf("profiles[\"interactive\"] = %+v, want %+v", interactive, want)
	}

	sensitive, ok := profiles["sensitive"]
	if !ok {
		t.Fatal("missing profile \"sensitive\"")
	}
	if sensitive.Parallelism != 4 || sensitive.MemoryKiB != 65536 {
		t.Errorf("profiles[\"sensitive\"] = %+v, unexpected values", sensitive)
	}
}

func TestLoadProfilesMissingFile(t *testing.T) {
	_, err := LoadProfiles(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("LoadProfiles() on a missing file did not return an error")
	}
}
