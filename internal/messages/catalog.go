package messages

// Catalog, loader, editor and export messages.
const (
	// BadgeAdmin is the header badge for the admin role.
	BadgeAdmin  = "ADMIN MODE"
	BadgeViewer = "VIEWER MODE"

	LoaderElementNotFound  = "data element #secure-data not found in document"
	LoaderNotArray         = "data element does not contain a JSON array"
	LoaderParseDocumentFmt = "parse document: %w"
	LoaderDecodeFmt        = "decode catalog JSON: %w"
	LoaderReadFileFmt      = "read %s from %s: %w"
	LoaderFetchFmt         = "fetch %s from %s: %w"
	LoaderFetchStatusFmt   = "fetch %s from %s: unexpected status %s"
	LoadErrorFmt           = "load catalog (%s): %v"

	EditNotOpen       = "no variant is open for editing"
	EditSaleMandatory = "sale price mandatory"
	EditSaleNotNumber = "sale price must be a number"
	EditMinNotNumber  = "min price must be a number"
	EditCommitFmt     = "apply edit: %w"

	ExportClipboardUnsupported = "no clipboard utility available (install xclip, xsel or wl-clipboard)"
	ExportClipboardFailedFmt   = "copy to clipboard: %v"
	ExportMarshalFmt           = "encode catalog JSON: %w"
	// ExportInstructions is shown after the fragment is on the clipboard.
	ExportInstructions = "Data copied!\n\nStep 1: Go to GitHub.\nStep 2: Open 'database.html'.\nStep 3: Delete everything there and Paste this new content.\nStep 4: Commit Changes."
)
