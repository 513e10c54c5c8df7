package messages

// Doctor messages for the doctor command.
const (
	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Check the config file, the catalog document and the theme preference"

	DoctorHealthCheckFmt = "Checking pricebook health using %s...\n"

	DoctorCheckNameConfig      = "Config"
	DoctorCheckNameDocument    = "Document"
	DoctorCheckNameCatalog     = "Catalog"
	DoctorCheckNamePreferences = "Preferences"

	DoctorConfigLoadFailedFmt = "Failed to load configuration: %v"
	DoctorConfigLoadRecommend = "Fix the file or pass --config with a valid path. Keys: [source] dir, url, timeout_seconds; [log] level."
	DoctorConfigLoadedFmt     = "Configuration loaded from %s"
	DoctorConfigDefaultFmt    = "No config file at %s; using defaults"

	DoctorDocumentFailedFmt         = "Could not load database.html from %s: %v"
	DoctorDocumentRecommend         = "Make sure database.html exists at the configured source and contains a <div id=\"secure-data\"> with a JSON array."
	DoctorDocumentLoadedFmt         = "Loaded %d products (%d variants) from %s"
	DoctorCatalogDuplicateIDFmt     = "Product id %d is used %d times; edits apply to the first match only"
	DoctorCatalogDuplicateRecommend = "Give every product a unique id in database.html."
	DoctorCatalogNoVariantsFmt      = "Product %d (%s) has no variants and shows no prices"
	DoctorCatalogNegativePriceFmt   = "Product %d (%s) variant %s has a negative price"
	DoctorCatalogMinAboveSaleFmt    = "Product %d (%s) variant %s has a min price above its sale price"
	DoctorCatalogPriceRecommend     = "Correct the price in the app and export, or edit database.html directly."
	DoctorCatalogOK                 = "No catalog problems found"

	DoctorPreferencesFailedFmt    = "Could not read theme preference: %v"
	DoctorPreferencesRecommendFmt = "Delete %s or run `pb theme light` to rewrite it."
	DoctorPreferencesStoredFmt    = "Theme preference: %s"
	DoctorPreferencesSystemFmt    = "No stored theme preference; following the terminal (%s)"

	DoctorStatusOKLabel   = "[OK]  "
	DoctorStatusWarnLabel = "[WARN]"
	DoctorStatusFailLabel = "[FAIL]"

	DoctorResultLineFmt        = "%s %-12s %s\n"
	DoctorRecommendationPrefix = "       💡 "
	DoctorRecommendationIndent = "          "

	DoctorFailureSummary = "❌ Some checks failed. Please address the issues above."
	DoctorFailureError   = "doctor checks failed"
	DoctorWarnSummary    = "⚠️  Checks passed with warnings."
	DoctorSuccessSummary = "✅ All systems go! pricebook is ready."
)
