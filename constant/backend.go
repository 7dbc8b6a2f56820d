// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

// Backend endpoint paths, relative to the configured API base URL.
const (
	MetadataPath = "/metadata"
	DownloadPath = "/download"
	AudioPath    = "/audio"
)

// FallbackFilename is the name the backend uses when no usable filename hint is given.
const FallbackFilename = "download"
