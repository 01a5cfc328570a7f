package template

import (
	"sort"
	"strings"

	"github.com/openproteomics/sdrf-templates/internal/messages"
)

// validateExtends checks that every extends target exists and that the
// extends relation, taken over all versions, forms a DAG. Edges are keyed by
// template name: a template depends on every template any of its versions
// extends.
func validateExtends(set *Set) error {
	edges := make(map[string][]string, len(set.Names))
	for _, name := range set.Names {
		parents := make(map[string]struct{})
		for _, v := range set.Templates[name].Versions {
			ext := v.Extends()
			if ext == "" {
				continue
			}
			if ext == name {
				return newError(ErrCyclicInheritance, name, v.Dir, messages.SelfExtendsFmt, name, v.Dir)
			}
			if set.Template(ext) == nil {
				return newError(ErrUnresolvedExtends, name, v.Dir, messages.UnresolvedExtendsFmt, name, v.Dir, ext)
			}
			parents[ext] = struct{}{}
		}
		for parent := range parents {
			edges[name] = append(edges[name], parent)
		}
		sort.Strings(edges[name])
	}

	if cycle := findCycle(set.Names, edges); len(cycle) > 0 {
		return newError(ErrCyclicInheritance, cycle[0], "", messages.CyclicInheritanceFmt, strings.Join(cycle, " -> "))
	}
	return nil
}

// findCycle runs a deterministic tri-color DFS over the extends edges and
// returns one cycle path as a stable witness, or nil if the graph is acyclic.
func findCycle(names []string, edges map[string][]string) []string {
	const (
		white = 0
		gray  = 1
		black = 2
	)

	color := make(map[string]int, len(names))
	parent := make(map[string]string, len(names))
	var cycle []string

	var dfs func(u string) bool
	dfs = func(u string) bool {
		color[u] = gray
		for _, v := range edges[u] {
			switch color[v] {
			case white:
				parent[v] = u
				if dfs(v) {
					return true
				}
			case gray:
				// Back-edge u -> v. Reconstruct v ... u -> v.
				cycle = append(cycle, v)
				for cur := u; cur != v; cur = parent[cur] {
					cycle = append(cycle, cur)
				}
				// Reverse into edge order and close the loop.
				for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
					cycle[i], cycle[j] = cycle[j], cycle[i]
				}
				cycle = append(cycle, cycle[0])
				return true
			}
		}
		color[u] = black
		return false
	}

	for _, name := range names {
		if color[name] == white && dfs(name) {
			return cycle
		}
	}
	return nil
}
