package doctor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/openproteomics/sdrf-templates/internal/config"
	"github.com/openproteomics/sdrf-templates/internal/manifest"
	"github.com/openproteomics/sdrf-templates/internal/messages"
	"github.com/openproteomics/sdrf-templates/internal/template"
)

// metadataColumns are the SDRF metadata headings every example file is
// expected to carry.
var metadataColumns = []string{
	"comment[sdrf version]",
	"comment[sdrf template]",
	"comment[sdrf annotation tool]",
}

// CheckDiscovery runs a discovery pass and reports it as a check. The
// returned Set is nil when discovery failed; downstream checks need it.
func CheckDiscovery(root string, cfg *config.Config) ([]Result, *template.Set) {
	set, err := template.Discover(root, template.DiscoverOptions{Ignore: cfg.Discovery.Ignore})
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameDiscovery,
			Message:        fmt.Sprintf(messages.DoctorDiscoveryFailedFmt, err),
			Recommendation: messages.DoctorDiscoveryRecommend,
		}}, nil
	}
	versions := 0
	for _, name := range set.Names {
		versions += len(set.Template(name).Versions)
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameDiscovery,
		Message:   fmt.Sprintf(messages.DoctorDiscoveryOKFmt, len(set.Names), versions),
	}}, set
}

// CheckExamples verifies that every version directory carries an example
// SDRF file whose header covers the resolved column list and the metadata
// columns. Missing examples and header gaps are warnings: the rule files
// remain authoritative.
func CheckExamples(root string, set *template.Set) []Result {
	var results []Result
	for _, name := range set.Names {
		for _, v := range set.Template(name).Versions {
			results = append(results, checkExample(root, set, v)...)
		}
	}
	return results
}

func checkExample(root string, set *template.Set, v *template.Version) []Result {
	rel := filepath.Join(v.Template, v.Dir, template.ExampleFileName(v.Template))
	path := filepath.Join(root, rel)

	if _, err := os.Stat(path); err != nil {
		return []Result{{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameExamples,
			Message:        fmt.Sprintf(messages.DoctorMissingExampleFmt, v.Template, v.Dir, template.ExampleFileName(v.Template)),
			Recommendation: messages.DoctorMissingExampleRecommend,
		}}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return []Result{{
			Status:    StatusFail,
			CheckName: messages.DoctorCheckNameExamples,
			Message:   fmt.Sprintf(messages.DoctorExampleUnreadableFmt, rel, err),
		}}
	}

	header, _, _ := strings.Cut(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	if strings.TrimSpace(header) == "" {
		return []Result{{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameExamples,
			Message:        fmt.Sprintf(messages.DoctorExampleEmptyFmt, rel),
			Recommendation: messages.DoctorExampleRecommend,
		}}
	}
	if !strings.Contains(header, "\t") {
		return []Result{{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameExamples,
			Message:        fmt.Sprintf(messages.DoctorExampleNotTSVFmt, rel),
			Recommendation: messages.DoctorExampleRecommend,
		}}
	}

	present := make(map[string]struct{})
	for _, col := range strings.Split(header, "\t") {
		present[strings.TrimSpace(col)] = struct{}{}
	}

	var results []Result
	cols, err := set.ResolveColumns(v.Template, v.Dir)
	if err != nil {
		// Discovery already validated the set; this is unreachable in
		// practice but reported rather than swallowed.
		return []Result{{
			Status:    StatusFail,
			CheckName: messages.DoctorCheckNameExamples,
			Message:   fmt.Sprintf(messages.DoctorExampleUnreadableFmt, rel, err),
		}}
	}
	var missing []string
	for _, c := range cols {
		if _, ok := present[c.Name]; !ok {
			missing = append(missing, c.Name)
		}
	}
	if len(missing) > 0 {
		results = append(results, Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameExamples,
			Message:        fmt.Sprintf(messages.DoctorExampleMissingColsFmt, rel, strings.Join(missing, ", ")),
			Recommendation: messages.DoctorExampleRecommend,
		})
	}

	var missingMeta []string
	for _, meta := range metadataColumns {
		if _, ok := present[meta]; !ok {
			missingMeta = append(missingMeta, meta)
		}
	}
	if len(missingMeta) > 0 {
		results = append(results, Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameExamples,
			Message:        fmt.Sprintf(messages.DoctorExampleMissingMetaFmt, rel, strings.Join(missingMeta, ", ")),
			Recommendation: messages.DoctorExampleRecommend,
		})
	}

	if len(results) == 0 {
		results = append(results, Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameExamples,
			Message:   fmt.Sprintf(messages.DoctorExampleOKFmt, rel),
		})
	}
	return results
}

// CheckManifest verifies that the published manifest matches a fresh build.
func CheckManifest(root string, cfg *config.Config, set *template.Set) []Result {
	path := cfg.ManifestPath(root)
	if _, err := os.Stat(path); err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameManifest,
			Message:        fmt.Sprintf(messages.DoctorManifestMissingFmt, cfg.Manifest.File),
			Recommendation: messages.DoctorManifestMissingRecommend,
		}}
	}

	_, inSync, err := manifest.Build(set).Check(path)
	if err != nil {
		return []Result{{
			Status:    StatusFail,
			CheckName: messages.DoctorCheckNameManifest,
			Message:   err.Error(),
		}}
	}
	if !inSync {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameManifest,
			Message:        fmt.Sprintf(messages.DoctorManifestStaleFmt, cfg.Manifest.File),
			Recommendation: messages.DoctorManifestStaleRecommend,
		}}
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameManifest,
		Message:   fmt.Sprintf(messages.DoctorManifestFreshFmt, cfg.Manifest.File),
	}}
}
