package template

import (
	"slices"
	"strings"

	"github.com/openproteomics/sdrf-templates/internal/messages"
)

// ResolveColumns returns the effective ordered column list for a template
// version. dir selects the version by directory name; an empty dir resolves
// the latest version. Parents resolve first at their latest version, so a
// child's columns follow its parent's, and a child column whose name matches
// a parent column replaces the parent's definition in the parent's position.
//
// Resolution is a pure function of the Set: resolving the same version twice
// yields identical lists. Cycles are detected even on a Set that skipped
// validateExtends, so the recursion always terminates.
func (s *Set) ResolveColumns(name, dir string) ([]Column, error) {
	return s.resolveColumns(name, dir, nil)
}

func (s *Set) resolveColumns(name, dir string, chain []string) ([]Column, error) {
	if slices.Contains(chain, name) {
		witness := strings.Join(append(chain, name), " -> ")
		return nil, newError(ErrCyclicInheritance, name, dir, messages.CyclicInheritanceFmt, witness)
	}

	t := s.Template(name)
	if t == nil {
		if len(chain) == 0 {
			return nil, newError(ErrDiscovery, name, dir, messages.ResolveUnknownTemplateFmt, name, strings.Join(s.Names, ", "))
		}
		from := chain[len(chain)-1]
		return nil, newError(ErrUnresolvedExtends, from, "", messages.UnresolvedExtendsChainFmt, from, name)
	}

	v := t.Latest()
	if dir != "" {
		if v = t.Version(dir); v == nil {
			return nil, newError(ErrDiscovery, name, dir, messages.ResolveUnknownVersionFmt, name, dir, strings.Join(t.VersionDirs(), ", "))
		}
	}

	var merged []Column
	if ext := v.Extends(); ext != "" {
		parent, err := s.resolveColumns(ext, "", append(chain, name))
		if err != nil {
			return nil, err
		}
		merged = slices.Clone(parent)
	}

	index := make(map[string]int, len(merged))
	for i, c := range merged {
		index[c.Name] = i
	}
	for _, c := range v.Rule.Columns {
		if i, ok := index[c.Name]; ok {
			merged[i] = c
			continue
		}
		index[c.Name] = len(merged)
		merged = append(merged, c)
	}
	return merged, nil
}
