// Package testutil provides helpers for building template trees in tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteTemplateVersion creates {root}/{name}/{dir}/{name}.yaml with the given
// rule file content.
// t is the active test; root is the template repository root.
func WriteTemplateVersion(t *testing.T, root, name, dir, rule string) {
	t.Helper()
	WriteFile(t, filepath.Join(root, name, dir, name+".yaml"), rule)
}

// WriteExample creates {root}/{name}/{dir}/{name}.sdrf.tsv with the given
// content.
// t is the active test; root is the template repository root.
func WriteExample(t *testing.T, root, name, dir, content string) {
	t.Helper()
	WriteFile(t, filepath.Join(root, name, dir, name+".sdrf.tsv"), content)
}

// WriteFile creates path and any missing parent directories.
// t is the active test; path is the destination file.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
