package messages

// Template discovery and resolution messages.
const (
	DiscoveryRootUnreadableFmt   = "read template root %s: %v"
	DiscoveryRootIsFileFmt       = "template root %s is not a directory"
	DiscoveryRootEmptyFmt        = "template root %s contains no template directories"
	DiscoveryNoVersionsFmt       = "template %q has no version directories"
	DiscoveryDuplicateVersionFmt = "template %q declares version %s twice (directories %s and %s)"
	DiscoveryReadTemplateFmt     = "read template directory %q: %v"

	MalformedVersionFmt = "template %q: directory %q is not a numeric major.minor.patch version: %v"

	RuleFileReadFmt    = "template %q version %s: read rule file %s: %v"
	RuleFileInvalidFmt = "template %q version %s: invalid rule file %s: %v"

	VersionMismatchFmt = "template %q: directory %s declares version %s"

	UnresolvedExtendsFmt      = "template %q version %s extends unknown template %q"
	UnresolvedExtendsChainFmt = "template %q extends unknown template %q"
	SelfExtendsFmt            = "template %q version %s extends itself"

	CyclicInheritanceFmt = "inheritance cycle: %s"

	// ConfigInvalidFmt reports a broken sdrft.toml.
	ConfigInvalidFmt          = "invalid config %s: %v"
	ConfigUnrecognizedKeysFmt = "config %s has unrecognized keys: %v"
	ConfigManifestFileEmpty   = "config %s: manifest.file must not be empty"
	ConfigManifestFileNested  = "config %s: manifest.file must be a bare file name, not a path"
	ConfigIgnoreEmptyEntryFmt = "config %s: discovery.ignore[%d] is empty"
)
