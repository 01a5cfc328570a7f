// Package template discovers the versioned SDRF template tree and resolves
// inherited column sets. The directory tree is the sole source of truth:
// every discovery pass re-reads it from scratch.
package template

import (
	"github.com/Masterminds/semver/v3"
)

// Column is one column definition from a rule file. Name is the SDRF column
// heading and the identity used by inheritance overrides; the remaining
// fields describe validation constraints and are passed through untouched.
type Column struct {
	Name               string   `yaml:"name"`
	Type               string   `yaml:"type,omitempty"`
	Description        string   `yaml:"description,omitempty"`
	Required           bool     `yaml:"required,omitempty"`
	AllowNotApplicable bool     `yaml:"allow_not_applicable,omitempty"`
	AllowNotAvailable  bool     `yaml:"allow_not_available,omitempty"`
	Ontology           string   `yaml:"ontology,omitempty"`
	Values             []string `yaml:"values,omitempty"`
	Example            string   `yaml:"example,omitempty"`
}

// RuleFile is the parsed {template}.yaml for one version.
type RuleFile struct {
	Version     string   `yaml:"version"`
	Extends     string   `yaml:"extends,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Columns     []Column `yaml:"columns"`
}

// Version is one immutable revision of a template.
type Version struct {
	// Template is the owning template name.
	Template string
	// Dir is the version directory name as written on disk.
	Dir string
	// Number is Dir parsed as a strict numeric triple.
	Number *semver.Version
	// Rule is the parsed rule file.
	Rule RuleFile
}

// Extends returns the parent template name declared by this version, or "".
func (v *Version) Extends() string {
	return v.Rule.Extends
}

// Template is a named schema with one or more versions.
type Template struct {
	Name string
	// Versions is sorted ascending by numeric triple.
	Versions []*Version
}

// Latest returns the maximum version by component-wise numeric comparison.
func (t *Template) Latest() *Version {
	return t.Versions[len(t.Versions)-1]
}

// Version returns the version with the given directory name, or nil.
func (t *Template) Version(dir string) *Version {
	for _, v := range t.Versions {
		if v.Dir == dir {
			return v
		}
	}
	return nil
}

// VersionDirs returns the ascending list of version directory names.
func (t *Template) VersionDirs() []string {
	dirs := make([]string, len(t.Versions))
	for i, v := range t.Versions {
		dirs[i] = v.Dir
	}
	return dirs
}

// Set is the result of one discovery pass over a template root.
type Set struct {
	// Templates maps template name to its discovered versions.
	Templates map[string]*Template
	// Names is the sorted list of template names.
	Names []string
}

// Template returns the named template, or nil.
func (s *Set) Template(name string) *Template {
	return s.Templates[name]
}
