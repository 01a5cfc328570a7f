package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aymanbagabas/go-udiff"
)

// Write persists the manifest to path. The encoded document is written to a
// temporary file in the same directory and renamed into place, so a failure
// mid-write leaves any previously published manifest untouched.
func (m *Manifest) Write(path string) error {
	data, err := m.Encode()
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write manifest: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("write manifest: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("write manifest: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// Check compares the manifest against the file at path without writing.
// It returns a unified diff (empty when the file matches) and whether the
// file is in sync. A missing file counts as drift with a full diff.
func (m *Manifest) Check(path string) (diff string, inSync bool, err error) {
	data, err := m.Encode()
	if err != nil {
		return "", false, fmt.Errorf("encode manifest: %w", err)
	}

	existing, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			existing = nil
		} else {
			return "", false, fmt.Errorf("read manifest: %w", err)
		}
	}

	if string(existing) == string(data) {
		return "", true, nil
	}
	name := filepath.Base(path)
	return udiff.Unified("a/"+name, "b/"+name, string(existing), string(data)), false, nil
}
