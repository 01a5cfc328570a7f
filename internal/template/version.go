package template

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// ParseVersion parses a version directory name into a strict numeric
// major.minor.patch triple. Pre-release and build metadata suffixes are
// rejected: version directories carry plain triples only, and "latest" is
// decided by component-wise numeric comparison.
func ParseVersion(s string) (*semver.Version, error) {
	v, err := semver.StrictNewVersion(s)
	if err != nil {
		return nil, err
	}
	if v.Prerelease() != "" || v.Metadata() != "" {
		return nil, fmt.Errorf("pre-release or build metadata is not allowed in version directories")
	}
	return v, nil
}
