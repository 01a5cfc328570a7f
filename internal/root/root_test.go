package root

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindTemplatesRootFound(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "sdrft.toml"), []byte(""), 0o644); err != nil {
		t.Fatalf("write sdrft.toml: %v", err)
	}
	sub := filepath.Join(root, "human", "1.0.0")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir sub: %v", err)
	}

	got, found, err := FindTemplatesRoot(sub)
	if err != nil {
		t.Fatalf("FindTemplatesRoot error: %v", err)
	}
	if !found {
		t.Fatalf("expected root to be found")
	}
	if got != root {
		t.Fatalf("expected root %s, got %s", root, got)
	}
}

func TestFindTemplatesRootManifestMarker(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "manifest.yml"), []byte("templates: {}\n"), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	got, found, err := FindTemplatesRoot(root)
	if err != nil {
		t.Fatalf("FindTemplatesRoot error: %v", err)
	}
	if !found || got != root {
		t.Fatalf("expected root %s, got %s (found=%v)", root, got, found)
	}
}

func TestFindTemplatesRootMissing(t *testing.T) {
	got, found, err := FindTemplatesRoot(t.TempDir())
	if err != nil {
		t.Fatalf("FindTemplatesRoot error: %v", err)
	}
	if found {
		t.Fatalf("expected not found, got %s", got)
	}
}

func TestFindTemplatesRootDirMarkerError(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "sdrft.toml"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	_, _, err := FindTemplatesRoot(root)
	if err == nil {
		t.Fatalf("expected error for directory marker")
	}
}
