package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "sdrft"
	// RootShort is the short description for the root command.
	RootShort = "SDRF template repository tooling"
	RootLong  = "sdrft maintains a versioned collection of SDRF sample-metadata templates:\n" +
		"it regenerates the manifest, resolves inherited column sets, and checks\n" +
		"the repository layout."
	RootMissingRepo = "no SDRF template repository found (missing sdrft.toml or manifest); run sdrft from inside the repository or pass --root"
	RootFlagRoot    = "Path to the template repository root (defaults to auto-detection from the working directory)"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// ManifestUse is the manifest command name.
	ManifestUse       = "manifest"
	ManifestShort     = "Regenerate the template manifest"
	ManifestLong      = "Rebuild the manifest from the template directory tree and write it to the\nrepository root. With --check, compare against the existing manifest instead\nof writing and exit non-zero on drift."
	ManifestFlagCheck = "Compare the freshly built manifest against the existing one without writing"

	ManifestWrittenFmt  = "Wrote %s (%d templates)\n"
	ManifestUpToDateFmt = "%s is up to date\n"
	ManifestDriftFmt    = "%s is out of date; run 'sdrft manifest' to regenerate"

	// ListUse is the list command name.
	ListUse   = "list"
	ListShort = "List templates with their latest version and inheritance"

	ListHeader   = "TEMPLATE\tLATEST\tVERSIONS\tEXTENDS"
	ListRowFmt   = "%s\t%s\t%d\t%s\n"
	ListNoParent = "-"

	// ResolveUse is the resolve command usage.
	ResolveUse   = "resolve <template>[@<version>]"
	ResolveShort = "Print the effective column list for a template version"
	ResolveLong  = "Resolve a template's effective ordered column list by walking its extends\nchain. Without an explicit @<version>, the latest version is resolved."

	ResolveUnknownTemplateFmt = "unknown template %q (known templates: %s)"
	ResolveUnknownVersionFmt  = "template %q has no version %q (available: %s)"
	ResolveBadArgFmt          = "invalid argument %q: expected <template> or <template>@<version>"
)
