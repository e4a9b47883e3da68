package messages

// CLI messages for user-facing flags and output.
const (
	// RootUse is the CLI command name.
	RootUse  = "hadolint-get [flags] [-- hadolint-args...]"
	RootLong = "hadolint-get downloads a specific hadolint version and executes it with given parameters.\n" +
		"Separate hadolint parameters with ` -- `."

	FlagHadolintVersion  = "hadolint version you would like to use; if omitted, use the latest available release"
	FlagPrintToolVersion = "print the version number of this tool and exit"
	FlagClean            = "remove the download cache before fetching; refused when the cache dir holds other files"
	FlagOffline          = "never access the network; only use cached hadolint executables"
	FlagPrintPath        = "print the path of the fetched hadolint executable instead of running it"

	// ToolVersionFmt formats the --print-tool-version output.
	ToolVersionFmt = "%s, version %s\n"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"

	// UnexpectedArgsFmt indicates positional arguments before the separator.
	UnexpectedArgsFmt = "unexpected arguments %q; separate hadolint parameters with ` -- `"
)
