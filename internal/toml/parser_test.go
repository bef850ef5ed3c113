package toml

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "profiles.toml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestDecodeFileParsesNestedTables(t *testing.T) {
	path := writeTempFile(t, `
# cost parameter presets
[profiles.interactive]
memory_kib = 19456
iterations = 2
parallelism = 1
hash_length = 32

[profiles.sensitive]
memory_kib = 65536
iterations = 4
parallelism = 4
hash_length = 32
`)

	data, err := DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile() error = %v", err)
	}

	interactive, ok := data["profiles.interactive"]
	if !ok {
		t.Fatal("missing table profiles.interactive")
	}
	if interactive["memory_kib"] != "19456" {
		t.Errorf("memory_kib = %q, want 19456", interactive["memory_kib"])
	}
	if interactive["iterations"] != "2" {
		t.Errorf("iterations = %q, want 2", interactive["iterations"])
	}
}

func TestTablesWithPrefix(t *testing.T) {
	data := map[string]Table{
		"profiles.interactive": {"iterations": "2"},
		"profiles.sensitive":   {"iterations": "4"},
		"unrelated":            {"foo": "bar"},
	}

	profiles := TablesWithPrefix(data, "profiles")
	if len(profiles) != 2 {
		t.Fatalf("len(profiles) = %d, want 2", len(profiles))
	}
	if profiles["interactive"]["iterations"] != "2" {
		t.Error("profiles[\"interactive\"] not carried through correctly")
	}
	if _, ok := profiles["unrelated"]; ok {
		t.Error("TablesWithPrefix leaked a table outside the prefix")
	}
}

func TestUnmarshalNumericAndStringFields(t *testing.T) {
	type profile struct {
		HashLength  uint32 `toml:"hash_length"`
		Parallelism uint8  `toml:"parallelism"`
		MemoryKiB   uint32 `toml:"memory_kib"`
		Iterations  uint32 `toml:"iterations"`
		Name        string `toml:"name"`
	}

	table := Table{
		"hash_length": "32",
		"parallelism": "4",
		"memory_kib":  "65536",
		"iterations":  "3",
		"name":        "sensitive",
	}

	var p profile
	if err := Unmarshal(table, &p); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	want := profile{HashLength: 32, Parallelism: 4, MemoryKiB: 65536, Iterations: 3, Name: "sensitive"}
	if p != want {
		t.Errorf("Unmarshal() = %+v, want %+v", p, want)
	}
}

func TestUnmarshalRejectsNonStructPointer(t *testing.T) {
	var n int
	if err := Unmarshal(Table{}, &n); err == nil {
		t.Fatal("Unmarshal() into *int did not return an error")
	}
}

func TestUnmarshalIgnoresUnknownKeys(t *testing.T) {
	type profile struct {
		Iterations uint32 `toml:"iterations"`
	}
	table := Table{"iterations": "3", "unused": "value"}

	var p profile
	if err := Unmarshal(table, &p); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if p.Iterations != 3 {
		t.Errorf("Iterations = %d, want 3", p.Iterations)
	}
}
