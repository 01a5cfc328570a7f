package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorFailsWithoutManifest(t *testing.T) {
	root := fixtureRepo(t)

	var out bytes.Buffer
	err := execute([]string{"sdrft", "doctor", "--root", root}, &out, &out)
	require.Error(t, err)
	var silent *SilentExitError
	require.True(t, errors.As(err, &silent))
	assert.Equal(t, 1, silent.Code)
	assert.Contains(t, out.String(), "does not exist")
}

func TestDoctorPassesOnHealthyRepo(t *testing.T) {
	root := fixtureRepo(t)

	header := "source name\tassay name\tcharacteristics[age]\tcomment[sdrf version]\tcomment[sdrf template]\tcomment[sdrf annotation tool]\n"
	for _, v := range []struct{ name, dir string }{
		{"base", "1.0.0"}, {"base", "1.1.0"}, {"human", "1.0.0"},
	} {
		path := filepath.Join(root, v.name, v.dir, v.name+".sdrf.tsv")
		require.NoError(t, os.WriteFile(path, []byte(header+"sample 1\trun 1\t42\t1.0.0\t"+v.name+"\tsdrft\n"), 0o644))
	}

	var out bytes.Buffer
	require.NoError(t, execute([]string{"sdrft", "manifest", "--root", root}, &out, &out))

	out.Reset()
	require.NoError(t, execute([]string{"sdrft", "doctor", "--root", root}, &out, &out))
	assert.Contains(t, out.String(), "All checks passed")
}

func TestDoctorWarnsOnMissingExamples(t *testing.T) {
	root := fixtureRepo(t)

	var out bytes.Buffer
	require.NoError(t, execute([]string{"sdrft", "manifest", "--root", root}, &out, &out))

	// Missing example files warn but do not fail the run.
	out.Reset()
	require.NoError(t, execute([]string{"sdrft", "doctor", "--root", root}, &out, &out))
	assert.Contains(t, out.String(), "no example file")
}

func TestDoctorReportsDiscoveryFailure(t *testing.T) {
	root := fixtureRepo(t)
	writeTemplateVersion(t, root, "broken", "1.0.0", "version: 9.9.9\n")

	var out bytes.Buffer
	err := execute([]string{"sdrft", "doctor", "--root", root}, &out, &out)
	require.Error(t, err)
	assert.Contains(t, out.String(), "discovery")
	assert.Contains(t, out.String(), "version mismatch")
}
