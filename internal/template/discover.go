package template

import (
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/openproteomics/sdrf-templates/internal/messages"
)

// DiscoverOptions controls which top-level directories are treated as
// templates. Hidden directories are always skipped.
type DiscoverOptions struct {
	// Ignore lists additional top-level directory names to skip
	// (e.g. "scripts", "docs").
	Ignore []string
}

// Discover runs a full discovery pass over the template root on disk.
func Discover(root string, opts DiscoverOptions) (*Set, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, newError(ErrDiscovery, "", "", messages.DiscoveryRootUnreadableFmt, root, err)
	}
	if !info.IsDir() {
		return nil, newError(ErrDiscovery, "", "", messages.DiscoveryRootIsFileFmt, root)
	}
	return DiscoverFS(os.DirFS(root), root, opts)
}

// DiscoverFS runs a full discovery pass over fsys. root is used in error
// messages only. The returned Set satisfies all invariants: every version
// parses as a numeric triple and matches its rule file, every extends target
// exists, and the extends relation is acyclic.
func DiscoverFS(fsys fs.FS, root string, opts DiscoverOptions) (*Set, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, newError(ErrDiscovery, "", "", messages.DiscoveryRootUnreadableFmt, root, err)
	}

	ignored := make(map[string]struct{}, len(opts.Ignore))
	for _, name := range opts.Ignore {
		ignored[name] = struct{}{}
	}

	set := &Set{Templates: make(map[string]*Template)}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
			continue
		}
		if _, skip := ignored[name]; skip {
			continue
		}
		tmpl, err := discoverTemplate(fsys, name)
		if err != nil {
			return nil, err
		}
		set.Templates[name] = tmpl
		set.Names = append(set.Names, name)
	}
	if len(set.Templates) == 0 {
		return nil, newError(ErrEmptyRoot, "", "", messages.DiscoveryRootEmptyFmt, root)
	}
	sort.Strings(set.Names)

	if err := validateExtends(set); err != nil {
		return nil, err
	}
	return set, nil
}

// discoverTemplate enumerates and parses one template's version directories.
func discoverTemplate(fsys fs.FS, name string) (*Template, error) {
	entries, err := fs.ReadDir(fsys, name)
	if err != nil {
		return nil, newError(ErrDiscovery, name, "", messages.DiscoveryReadTemplateFmt, name, err)
	}

	tmpl := &Template{Name: name}
	seen := make(map[string]string) // canonical triple -> directory name
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := entry.Name()
		number, err := ParseVersion(dir)
		if err != nil {
			return nil, newError(ErrMalformedVersion, name, dir, messages.MalformedVersionFmt, name, dir, err)
		}
		if prev, dup := seen[number.String()]; dup {
			return nil, newError(ErrDiscovery, name, dir, messages.DiscoveryDuplicateVersionFmt, name, number, prev, dir)
		}
		seen[number.String()] = dir

		version, err := loadVersion(fsys, name, dir, number)
		if err != nil {
			return nil, err
		}
		tmpl.Versions = append(tmpl.Versions, version)
	}
	if len(tmpl.Versions) == 0 {
		return nil, newError(ErrDiscovery, name, "", messages.DiscoveryNoVersionsFmt, name)
	}
	sort.Slice(tmpl.Versions, func(i, j int) bool {
		return tmpl.Versions[i].Number.LessThan(tmpl.Versions[j].Number)
	})
	return tmpl, nil
}

// loadVersion reads and checks one version's rule file.
func loadVersion(fsys fs.FS, name, dir string, number *semver.Version) (*Version, error) {
	rulePath := path.Join(name, dir, RuleFileName(name))
	data, err := fs.ReadFile(fsys, rulePath)
	if err != nil {
		return nil, newError(ErrDiscovery, name, dir, messages.RuleFileReadFmt, name, dir, rulePath, err)
	}
	rule, err := parseRuleFile(data)
	if err != nil {
		return nil, newError(ErrDiscovery, name, dir, messages.RuleFileInvalidFmt, name, dir, rulePath, err)
	}

	// The declared version must equal the directory name. A declared version
	// that is not a valid triple can never match, so it reports the same way.
	declared, err := ParseVersion(strings.TrimSpace(rule.Version))
	if err != nil || !declared.Equal(number) {
		return nil, newError(ErrVersionMismatch, name, dir, messages.VersionMismatchFmt, name, dir, rule.Version)
	}

	return &Version{
		Template: name,
		Dir:      dir,
		Number:   number,
		Rule:     rule,
	}, nil
}
