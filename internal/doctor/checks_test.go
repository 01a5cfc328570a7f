package doctor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/openproteomics/sdrf-templates/internal/config"
	"github.com/openproteomics/sdrf-templates/internal/manifest"
	"github.com/openproteomics/sdrf-templates/internal/template"
	"github.com/openproteomics/sdrf-templates/internal/testutil"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	testutil.WriteFile(t, path, content)
}

func fixtureRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "base", "1.0.0", "base.yaml"), `version: 1.0.0
columns:
  - name: source name
  - name: assay name
`)
	testutil.WriteExample(t, root, "base", "1.0.0",
		"source name\tassay name\tcomment[sdrf version]\tcomment[sdrf template]\tcomment[sdrf annotation tool]\n"+
			"sample 1\trun 1\t1.0.0\tbase\tsdrft\n")
	return root
}

func statuses(results []Result) []Status {
	out := make([]Status, len(results))
	for i, r := range results {
		out[i] = r.Status
	}
	return out
}

func TestCheckDiscoveryPass(t *testing.T) {
	root := fixtureRoot(t)

	results, set := CheckDiscovery(root, config.Default())
	if set == nil {
		t.Fatalf("expected a set")
	}
	if len(results) != 1 || results[0].Status != StatusOK {
		t.Fatalf("expected single PASS, got %v", results)
	}
}

func TestCheckDiscoveryFail(t *testing.T) {
	results, set := CheckDiscovery(t.TempDir(), config.Default())
	if set != nil {
		t.Fatalf("expected nil set on failure")
	}
	if len(results) != 1 || results[0].Status != StatusFail {
		t.Fatalf("expected single FAIL, got %v", results)
	}
	if results[0].Recommendation == "" {
		t.Fatalf("expected a recommendation")
	}
}

func TestCheckExamplesPass(t *testing.T) {
	root := fixtureRoot(t)
	_, set := CheckDiscovery(root, config.Default())

	results := CheckExamples(root, set)
	if len(results) != 1 || results[0].Status != StatusOK {
		t.Fatalf("expected single PASS, got %v", results)
	}
}

func TestCheckExamplesMissingFile(t *testing.T) {
	root := fixtureRoot(t)
	if err := os.Remove(filepath.Join(root, "base", "1.0.0", "base.sdrf.tsv")); err != nil {
		t.Fatalf("remove example: %v", err)
	}
	_, set := CheckDiscovery(root, config.Default())

	results := CheckExamples(root, set)
	if len(results) != 1 || results[0].Status != StatusWarn {
		t.Fatalf("expected single WARN, got %v", results)
	}
}

func TestCheckExamplesMissingColumnsAndMetadata(t *testing.T) {
	root := fixtureRoot(t)
	testutil.WriteExample(t, root, "base", "1.0.0", "source name\textra\nsample 1\tx\n")
	_, set := CheckDiscovery(root, config.Default())

	results := CheckExamples(root, set)
	if got := statuses(results); len(got) != 2 || got[0] != StatusWarn || got[1] != StatusWarn {
		t.Fatalf("expected two WARNs, got %v", results)
	}
	if !strings.Contains(results[0].Message, "assay name") {
		t.Fatalf("expected missing column report, got %q", results[0].Message)
	}
	if !strings.Contains(results[1].Message, "comment[sdrf version]") {
		t.Fatalf("expected missing metadata report, got %q", results[1].Message)
	}
}

func TestCheckExamplesNonTSVHeader(t *testing.T) {
	root := fixtureRoot(t)
	testutil.WriteExample(t, root, "base", "1.0.0", "source name,assay name\n")
	_, set := CheckDiscovery(root, config.Default())

	results := CheckExamples(root, set)
	if len(results) != 1 || results[0].Status != StatusWarn {
		t.Fatalf("expected single WARN, got %v", results)
	}
}

func TestCheckManifestMissing(t *testing.T) {
	root := fixtureRoot(t)
	cfg := config.Default()
	_, set := CheckDiscovery(root, cfg)

	results := CheckManifest(root, cfg, set)
	if len(results) != 1 || results[0].Status != StatusFail {
		t.Fatalf("expected FAIL for missing manifest, got %v", results)
	}
}

func TestCheckManifestFreshAndStale(t *testing.T) {
	root := fixtureRoot(t)
	cfg := config.Default()
	_, set := CheckDiscovery(root, cfg)

	if err := manifest.Build(set).Write(cfg.ManifestPath(root)); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	results := CheckManifest(root, cfg, set)
	if len(results) != 1 || results[0].Status != StatusOK {
		t.Fatalf("expected PASS for fresh manifest, got %v", results)
	}

	// A new version appears without regenerating.
	writeFile(t, filepath.Join(root, "base", "1.1.0", "base.yaml"), "version: 1.1.0\ncolumns:\n  - name: source name\n")
	set2, err := template.Discover(root, template.DiscoverOptions{Ignore: cfg.Discovery.Ignore})
	if err != nil {
		t.Fatalf("Discover error: %v", err)
	}
	results = CheckManifest(root, cfg, set2)
	if len(results) != 1 || results[0].Status != StatusFail {
		t.Fatalf("expected FAIL for stale manifest, got %v", results)
	}
}
