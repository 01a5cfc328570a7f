package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureRepo(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeTemplateVersion(t, root, "base", "1.0.0", "version: 1.0.0\ncolumns:\n  - name: source name\n")
	writeTemplateVersion(t, root, "base", "1.1.0", "version: 1.1.0\ncolumns:\n  - name: source name\n  - name: assay name\n")
	writeTemplateVersion(t, root, "human", "1.0.0", "version: 1.0.0\nextends: base\ncolumns:\n  - name: characteristics[age]\n")
	return root
}

func TestManifestWritesFile(t *testing.T) {
	root := fixtureRepo(t)

	var out bytes.Buffer
	require.NoError(t, execute([]string{"sdrft", "manifest", "--root", root}, &out, &out))
	assert.Contains(t, out.String(), "Wrote manifest.yml (2 templates)")

	data, err := os.ReadFile(filepath.Join(root, "manifest.yml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "templates:")
	assert.Contains(t, string(data), "latest: 1.1.0")
	assert.Contains(t, string(data), "extends: base")
}

func TestManifestCheckInSync(t *testing.T) {
	root := fixtureRepo(t)

	var out bytes.Buffer
	require.NoError(t, execute([]string{"sdrft", "manifest", "--root", root}, &out, &out))

	out.Reset()
	require.NoError(t, execute([]string{"sdrft", "manifest", "--check", "--root", root}, &out, &out))
	assert.Contains(t, out.String(), "up to date")
}

func TestManifestCheckDetectsDrift(t *testing.T) {
	root := fixtureRepo(t)

	var out bytes.Buffer
	require.NoError(t, execute([]string{"sdrft", "manifest", "--root", root}, &out, &out))

	// A version lands without regenerating the manifest.
	writeTemplateVersion(t, root, "human", "1.1.0", "version: 1.1.0\nextends: base\ncolumns:\n  - name: characteristics[age]\n")

	out.Reset()
	err := execute([]string{"sdrft", "manifest", "--check", "--root", root}, &out, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of date")
	assert.Contains(t, out.String(), "+") // unified diff on stdout
}

func TestManifestCheckDoesNotWrite(t *testing.T) {
	root := fixtureRepo(t)

	var out bytes.Buffer
	err := execute([]string{"sdrft", "manifest", "--check", "--root", root}, &out, &out)
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(root, "manifest.yml"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestManifestFailureLeavesExistingManifest(t *testing.T) {
	root := fixtureRepo(t)

	var out bytes.Buffer
	require.NoError(t, execute([]string{"sdrft", "manifest", "--root", root}, &out, &out))
	before, err := os.ReadFile(filepath.Join(root, "manifest.yml"))
	require.NoError(t, err)

	// Break the tree: resolution must abort before any write.
	writeTemplateVersion(t, root, "broken", "1.0.0", "version: 2.0.0\n")
	out.Reset()
	require.Error(t, execute([]string{"sdrft", "manifest", "--root", root}, &out, &out))

	after, err := os.ReadFile(filepath.Join(root, "manifest.yml"))
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestManifestRespectsConfig(t *testing.T) {
	root := fixtureRepo(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "sdrft.toml"), []byte("[manifest]\nfile = \"templates.yml\"\n"), 0o644))

	var out bytes.Buffer
	require.NoError(t, execute([]string{"sdrft", "manifest", "--root", root}, &out, &out))

	_, err := os.Stat(filepath.Join(root, "templates.yml"))
	require.NoError(t, err)
}
