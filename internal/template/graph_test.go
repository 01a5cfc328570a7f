package template

import (
	"slices"
	"testing"
)

// assertClosedCycle checks that a witness path starts and ends on the same
// template and that every adjacent hop is a real extends edge.
func assertClosedCycle(t *testing.T, cycle []string, edges map[string][]string) {
	t.Helper()
	if len(cycle) < 3 {
		t.Fatalf("expected a closed cycle, got %v", cycle)
	}
	if cycle[0] != cycle[len(cycle)-1] {
		t.Fatalf("cycle %v does not close its loop", cycle)
	}
	for i := 0; i < len(cycle)-1; i++ {
		if !slices.Contains(edges[cycle[i]], cycle[i+1]) {
			t.Fatalf("cycle %v: hop %q -> %q is not an extends edge", cycle, cycle[i], cycle[i+1])
		}
	}
}

func TestFindCycleTwoNodeWitness(t *testing.T) {
	edges := map[string][]string{
		"base":  {"human"},
		"human": {"base"},
	}
	cycle := findCycle([]string{"base", "human"}, edges)
	assertClosedCycle(t, cycle, edges)
}

func TestFindCycleLongerWitness(t *testing.T) {
	edges := map[string][]string{
		"base":            {"dda-acquisition"},
		"ms-proteomics":   {"base"},
		"dda-acquisition": {"ms-proteomics"},
	}
	cycle := findCycle([]string{"base", "dda-acquisition", "ms-proteomics"}, edges)
	assertClosedCycle(t, cycle, edges)
}

func TestFindCycleAcyclic(t *testing.T) {
	edges := map[string][]string{
		"human":         {"base"},
		"ms-proteomics": {"base"},
	}
	if cycle := findCycle([]string{"base", "human", "ms-proteomics"}, edges); cycle != nil {
		t.Fatalf("expected no cycle, got %v", cycle)
	}
}
