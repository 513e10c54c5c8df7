package messages

// Prompt messages for standalone forms.
const (
	PromptCancelled        = "cancelled"
	PromptRequiresTerminal = "this prompt requires an interactive terminal"
	PromptFailedFmt        = "prompt failed: %w"
)
