// Package scaffold creates new template version directories, either by
// carrying forward an existing version's files or by rendering the embedded
// starter for a brand new template.
package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"

	tmpl "github.com/openproteomics/sdrf-templates/internal/template"
)

//go:embed seed
var seedFS embed.FS

// seedData fills the embedded starter files.
type seedData struct {
	Name    string
	Version string
	Extends string
}

var versionLine = regexp.MustCompile(`(?m)^version:[^\n]*$`)

// NewVersion scaffolds {root}/{template}/{version} from an existing version:
// the rule file is copied with its version field rewritten, and the example
// file is carried over unchanged when present.
func NewVersion(root string, prev *tmpl.Version, version string) (string, error) {
	dir, err := makeVersionDir(root, prev.Template, version)
	if err != nil {
		return "", err
	}

	prevDir := filepath.Join(root, prev.Template, prev.Dir)
	rule, err := os.ReadFile(filepath.Join(prevDir, tmpl.RuleFileName(prev.Template)))
	if err != nil {
		return "", fmt.Errorf("read previous rule file: %w", err)
	}
	if !versionLine.Match(rule) {
		return "", fmt.Errorf("previous rule file declares no version line")
	}
	rule = versionLine.ReplaceAll(rule, []byte("version: "+version))
	if err := os.WriteFile(filepath.Join(dir, tmpl.RuleFileName(prev.Template)), rule, 0o644); err != nil {
		return "", fmt.Errorf("write rule file: %w", err)
	}

	example, err := os.ReadFile(filepath.Join(prevDir, tmpl.ExampleFileName(prev.Template)))
	if err == nil {
		if err := os.WriteFile(filepath.Join(dir, tmpl.ExampleFileName(prev.Template)), example, 0o644); err != nil {
			return "", fmt.Errorf("write example file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("read previous example file: %w", err)
	}
	return dir, nil
}

// NewTemplate scaffolds the first version of a new template from the
// embedded starter files.
func NewTemplate(root, name, version, extends string) (string, error) {
	dir, err := makeVersionDir(root, name, version)
	if err != nil {
		return "", err
	}
	data := seedData{Name: name, Version: version, Extends: extends}

	rule, err := renderSeed("seed/template.yaml.tmpl", data)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(dir, tmpl.RuleFileName(name)), rule, 0o644); err != nil {
		return "", fmt.Errorf("write rule file: %w", err)
	}

	example, err := renderSeed("seed/template.sdrf.tsv.tmpl", data)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(dir, tmpl.ExampleFileName(name)), example, 0o644); err != nil {
		return "", fmt.Errorf("write example file: %w", err)
	}
	return dir, nil
}

func makeVersionDir(root, name, version string) (string, error) {
	dir := filepath.Join(root, name, version)
	if _, err := os.Stat(dir); err == nil {
		return "", fmt.Errorf("%s already exists", filepath.Join(name, version))
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create version directory: %w", err)
	}
	return dir, nil
}

func renderSeed(path string, data seedData) ([]byte, error) {
	raw, err := seedFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed %s: %w", path, err)
	}
	t, err := template.New(filepath.Base(path)).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parse seed %s: %w", path, err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render seed %s: %w", path, err)
	}
	out := buf.Bytes()
	if !strings.HasSuffix(buf.String(), "\n") {
		out = append(out, '\n')
	}
	return out, nil
}
