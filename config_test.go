package aegis

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultRootPolicyIsStrict(t *testing.T) {
	if DefaultRootPolicy().AllowTempRoots {
		t.Fatal("expected strict default policy")
	}
}

func TestLoadRootPolicy(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roots.yaml")
	if err := os.WriteFile(path, []byte("allow_temp_roots: true\n"), 0644); err != nil {
		t.Fatal(err)
	}

	policy, err := LoadRootPolicy(path)
	if err != nil {
		t.Fatalf("LoadRootPolicy: %v", err)
	}
	if !policy.AllowTempRoots {
		t.Fatal("expected AllowTempRoots to be true")
	}
}

func TestLoadRootPolicyMissingFile(t *testing.T) {
	_, err := LoadRootPolicy(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	kind, ok := KindOf(err)
	if !ok || kind != ResourceErrorKind {
		t.Fatalf("expected ResourceErrorKind, got %v", kind)
	}
}
