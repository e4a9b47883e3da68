package messages

// Config messages for configuration loading and validation.
const (
	// ConfigReadFileFmt formats config read errors.
	ConfigReadFileFmt         = "read config %s: %w"
	ConfigInvalidConfigFmt    = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt = "%s: unrecognized config keys: %w"
	ConfigURLInvalidFmt       = "%s: %s %q is not a supported URL (schemes: %s)"
	ConfigLogLevelInvalidFmt  = "%s: log_level %q is invalid (allowed: debug, info, warn, error)"
	ConfigBoolInvalidFmt      = "%s=%q is not a boolean"
	ConfigStartPathRequired   = "start path is required"
	ConfigResolvePathFmt      = "resolve path %s: %w"
	ConfigCheckPathFmt        = "check %s: %w"
)
