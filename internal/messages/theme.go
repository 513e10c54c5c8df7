package messages

// Theme preference messages.
const (
	ThemeInvalidFmt     = "unknown theme %q (supported: dark, light)"
	ThemeReadFmt        = "read preferences %s: %w"
	ThemeParseFmt       = "parse preferences %s: %w"
	ThemeWriteFmt       = "write preferences %s: %w"
	ThemeCreateDirFmt   = "create preferences dir %s: %w"
	ThemeOpenLockFmt    = "open preferences lock %s: %w"
	ThemeLockFmt        = "lock preferences %s: %w"
	ThemeLockTimeoutFmt = "timed out after %s waiting for preferences lock"
)
