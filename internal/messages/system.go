package messages

// System messages for version resolution, caching, fetching, and dispatch.
const (
	// PlatformUnsupportedFmt formats the unsupported platform error.
	PlatformUnsupportedFmt = "The platform %q is unsupported. Supported platforms: %s"

	// CacheRootEnvMissingFmt indicates an environment variable needed for the cache root is unset.
	CacheRootEnvMissingFmt    = "cannot determine cache directory for %s: %s is not set"
	CacheCreateDirFmt         = "create cache dir %s: %w"
	CacheCleanDirFmt          = "clean cache dir %s: %w"
	CacheCleanForeignEntryFmt = "refusing to clean cache dir %s: %q is not a hadolint-get cache entry"
	CacheReadDirFmt           = "read cache dir %s: %w"

	// VersionNoTagsFoundFmt indicates the upstream remote has no version tags.
	VersionNoTagsFoundFmt         = "no version tags found at %s"
	VersionUpstreamUnreachableFmt = "cannot list tags of %s: %v"
	VersionNoCachedVersionsFmt    = "no cached hadolint versions found in %s"

	// FetchNotFetchableFmt formats the download failure error.
	FetchNotFetchableFmt      = "Cannot fetch hadolint version %q for platform %q."
	FetchNetworkDisabled      = "network access disabled"
	FetchCheckCachedBinaryFmt = "check cached binary %s: %w"
	FetchCreateTempFileFmt    = "create temp file: %w"
	FetchWriteTempFileFmt     = "write temp file: %w"
	FetchSyncTempFileFmt      = "sync temp file: %w"
	FetchCloseTempFileFmt     = "close temp file: %w"
	FetchChmodCachedBinaryFmt = "chmod cached binary: %w"
	FetchMoveCachedBinaryFmt  = "move cached binary into place: %w"
	FetchCreateRequestFmt     = "create request for %s: %w"
	FetchDownloadFailedFmt    = "download %s: %w"
	FetchUnexpectedStatusFmt  = "download %s: unexpected status %s"
	FetchResolverRequired     = "version resolver is required"
	FetchDownloadingFmt       = "Downloading hadolint %s for %s...\n"
	FetchDownloadedFmt        = "Downloaded hadolint %s to %s\n"
	FetchAbsolutePathFmt      = "resolve absolute path of %s: %w"

	// DispatchExecutableMissingFmt indicates the fetched executable vanished before exec.
	DispatchExecutableMissingFmt = "executable %s: %w"
	DispatchExecutableIsDirFmt   = "executable %s is a directory"
	DispatchSystemRequired       = "dispatch system is required"
)
