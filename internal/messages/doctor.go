package messages

// Doctor check messages.
const (
	DoctorUse            = "doctor"
	DoctorShort          = "Check template repository health"
	DoctorHealthCheckFmt = "Checking SDRF template repository at %s\n\n"

	DoctorCheckNameDiscovery = "discovery"
	DoctorCheckNameExamples  = "examples"
	DoctorCheckNameManifest  = "manifest"

	DoctorDiscoveryOKFmt     = "discovered %d templates, %d versions"
	DoctorDiscoveryFailedFmt = "template discovery failed: %v"
	DoctorDiscoveryRecommend = "fix the reported template or version directory and re-run 'sdrft doctor'"

	DoctorMissingExampleFmt       = "%s/%s has no example file %s"
	DoctorMissingExampleRecommend = "add an example SDRF file so consumers can see the template in use"

	DoctorExampleUnreadableFmt  = "%s: %v"
	DoctorExampleEmptyFmt       = "%s is empty"
	DoctorExampleNotTSVFmt      = "%s header is not tab-separated"
	DoctorExampleMissingColsFmt = "%s header is missing declared columns: %s"
	DoctorExampleMissingMetaFmt = "%s header is missing metadata columns: %s"
	DoctorExampleOKFmt          = "%s header covers all declared columns"
	DoctorExampleRecommend      = "regenerate the example header from the resolved column list"

	DoctorManifestMissingFmt       = "manifest %s does not exist"
	DoctorManifestMissingRecommend = "run 'sdrft manifest' to generate it"
	DoctorManifestStaleFmt         = "manifest %s does not match the template tree"
	DoctorManifestStaleRecommend   = "run 'sdrft manifest' to regenerate it"
	DoctorManifestFreshFmt         = "manifest %s is up to date"

	DoctorAllChecksPassed = "\nAll checks passed.\n"
	DoctorChecksFailed    = "\nSome checks failed.\n"
)
