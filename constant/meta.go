// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Tikload is the canonical application identifier used for filesystem paths and CLI branding.
	Tikload = "tikload"

	// Version is the current application semantic version string.
	Version = "0.3.1"

	// UserAgent is the default HTTP User-Agent sent to the download backend.
	UserAgent = Tikload + "/" + Version
)

// Build metadata, overridden at link time with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
