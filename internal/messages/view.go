package messages

// Terminal UI messages.
const (
	ViewTitle            = "Price Book"
	ViewLoginPrompt      = "Enter password to continue"
	ViewPasswordHolder   = "password"
	ViewLoginRejected    = "Incorrect password"
	ViewLoading          = "Loading database..."
	ViewLoadFailed       = "Error loading database.html. Make sure the file exists!"
	ViewEmptyCatalog     = "No products in database.html."
	ViewOutOfStock       = "(OUT OF STOCK)"
	ViewCurrency         = "₹"
	ViewMinPriceFmt      = "Min: %s"
	ViewEditHint         = "[e] edit"
	ViewUnsavedChanges   = "unsaved changes - export to keep them"
	ViewThemeFmt         = "theme: %s"
	ViewEditTitleFmt     = "Edit %s - %s"
	ViewEditSaleLabel    = "Sale price"
	ViewEditMinLabel     = "Min price"
	ViewEditAvailLabel   = "Available"
	ViewEditMinHolder    = "optional"
	ViewPendingChanges   = "Pending changes:"
	ViewClipboardFailFmt = "Could not copy to the clipboard (%v).\n\nCopy this text into database.html by hand:\n\n%s"
	ViewThemeSaveFailed  = "save theme preference failed"
	ViewThemeLoadFailed  = "load theme preference failed"

	HelpUp       = "up"
	HelpDown     = "down"
	HelpEdit     = "edit"
	HelpExport   = "export"
	HelpTheme    = "theme"
	HelpReload   = "reload"
	HelpLogout   = "logout"
	HelpQuit     = "quit"
	HelpLogin    = "login"
	HelpSave     = "save"
	HelpNext     = "next field"
	HelpToggle   = "toggle available"
	HelpCancel   = "cancel"
	HelpContinue = "continue"
)
