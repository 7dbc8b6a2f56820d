// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 14

// Backend API - these keys locate and tune the metadata and download service.
const (
	APIBaseURL   = "api.base_url"
	APITimeout   = "api.timeout"
	APIUserAgent = "api.user_agent"
)

// Downloads - these keys govern how constructed download links are handed to the system.
const (
	DownloadOpenWith     = "download.open_with"
	DownloadAudioEnabled = "download.audio_enabled"
)

// Terminal User Interface (TUI) - these keys define the primary interactive environment's styling and logic.
const (
	TUIItemSpacing   = "tui.item_spacing"
	TUIPromptString  = "tui.prompt"
	TUIShowFormatIDs = "tui.show_format_ids"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
