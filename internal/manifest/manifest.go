// Package manifest builds and persists the generated template index. The
// manifest is a derived artifact: it is rebuilt wholesale from a discovery
// pass and is never a source of truth.
package manifest

import (
	"gopkg.in/yaml.v3"

	"github.com/openproteomics/sdrf-templates/internal/template"
)

// DefaultFileName is the manifest file name at the repository root.
const DefaultFileName = "manifest.yml"

const headerComment = " Generated by 'sdrft manifest'. DO NOT EDIT."

// Entry describes one template in the manifest.
type Entry struct {
	// Latest is the maximum version by numeric triple comparison.
	Latest string
	// Versions is the full version history, ascending.
	Versions []string
	// Extends is the parent template of the latest version, or "".
	Extends string
}

// Manifest maps template names to their entries, with a stable name order.
type Manifest struct {
	names   []string
	entries map[string]Entry
}

// Build derives a manifest from a discovery pass. The Set already satisfies
// every invariant, so Build cannot fail.
func Build(set *template.Set) *Manifest {
	m := &Manifest{
		names:   append([]string(nil), set.Names...),
		entries: make(map[string]Entry, len(set.Names)),
	}
	for _, name := range set.Names {
		tmpl := set.Template(name)
		m.entries[name] = Entry{
			Latest:   tmpl.Latest().Dir,
			Versions: tmpl.VersionDirs(),
			Extends:  tmpl.Latest().Extends(),
		}
	}
	return m
}

// Names returns the template names in manifest order.
func (m *Manifest) Names() []string {
	return m.names
}

// Entry returns the entry for a template name.
func (m *Manifest) Entry(name string) (Entry, bool) {
	e, ok := m.entries[name]
	return e, ok
}

// Len returns the number of templates in the manifest.
func (m *Manifest) Len() int {
	return len(m.names)
}

// Encode renders the manifest as deterministic YAML: template names in sorted
// order, extends rendered as null when absent.
func (m *Manifest) Encode() ([]byte, error) {
	templates := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range m.names {
		entry := m.entries[name]

		versions := &yaml.Node{Kind: yaml.SequenceNode}
		for _, v := range entry.Versions {
			versions.Content = append(versions.Content, scalar(v))
		}

		extends := scalar(entry.Extends)
		if entry.Extends == "" {
			extends = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
		}

		value := &yaml.Node{Kind: yaml.MappingNode}
		value.Content = append(value.Content,
			scalar("latest"), scalar(entry.Latest),
			scalar("versions"), versions,
			scalar("extends"), extends,
		)
		templates.Content = append(templates.Content, scalar(name), value)
	}

	root := &yaml.Node{Kind: yaml.MappingNode, HeadComment: headerComment}
	root.Content = append(root.Content, scalar("templates"), templates)
	return yaml.Marshal(root)
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}
