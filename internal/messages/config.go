package messages

// Config messages.
const (
	ConfigResolveHomeFmt      = "resolve home dir: %w"
	ConfigMissingFileFmt      = "missing config file %s: %w"
	ConfigInvalidConfigFmt    = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt = "%s has unrecognized keys: %v"
	ConfigSourceBothFmt       = "%s: [source] sets both dir and url; choose one"
	ConfigSourceMissingFmt    = "%s: [source] needs dir or url"
	ConfigSourceURLInvalidFmt = "%s: [source] url %q must be an absolute http or https URL"
	ConfigTimeoutInvalidFmt   = "%s: [source] timeout_seconds must be >= 0 (got %d)"
	ConfigLogLevelInvalidFmt  = "%s: [log] level %q must be one of debug, info, warn, error"
)
