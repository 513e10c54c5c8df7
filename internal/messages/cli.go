package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse              = "pb"
	RootShort            = "Price book for a small shop"
	RootLong             = "Browse the shop catalog in database.html, edit prices as admin and export the updated data fragment."
	RootVersionFlag      = "Print version and exit"
	RootConfigFlag       = "Path to config.toml (default ~/.config/pricebook/config.toml)"
	RootRequiresTTY      = "pb needs an interactive terminal; use `pb doctor` to check the setup"
	RootProgramFailedFmt = "run app: %w"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// DigestUse is the digest command name.
	DigestUse         = "digest"
	DigestShort       = "Print the SHA-256 digest of a password and the role it unlocks"
	DigestPromptTitle = "Password"
	DigestReadFmt     = "read password: %w"
	DigestOutputFmt   = "digest: %s\nrole:   %s\n"

	// ThemeUse is the theme command usage.
	ThemeUse            = "theme [dark|light|toggle]"
	ThemeShort          = "Show or change the stored color theme"
	ThemeToggleArg      = "toggle"
	ThemeCurrentFmt     = "%s\n"
	ThemeSavedFmt       = "theme set to %s (%s)\n"
	ThemeReadWarningFmt = "Warning: %v\n"
)
