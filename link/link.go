// Package link builds the backend URLs that trigger a download.
package link

import (
	"errors"
	"net/url"
	"strings"

	"github.com/samber/mo"
	"github.com/tikload-cli/tikload/constant"
)

var (
	ErrBaseRequired   = errors.New("api base url is required")
	ErrSourceRequired = errors.New("source page url is required")
	ErrFormatRequired = errors.New("video downloads require a format id")
	ErrBaseHasQuery   = errors.New("api base url must not carry a query string")
)

// Kind selects the backend operation a request targets.
type Kind int

const (
	Video Kind = iota + 1
	Audio
)

func (k Kind) String() string {
	switch k {
	case Video:
		return "video"
	case Audio:
		return "audio"
	default:
		return "unknown"
	}
}

func (k Kind) path() string {
	if k == Audio {
		return constant.AudioPath
	}
	return constant.DownloadPath
}

// Request describes a single download. It is built on demand and never stored.
type Request struct {
	Kind          Kind
	SourcePageURL string
	// FormatID is absent when the backend should pick the best variant itself.
	FormatID mo.Option[string]
	Filename string
}

// Build returns the download URL for req against the API base.
// No network call is made.
func Build(base string, req Request) (string, error) {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		return "", ErrBaseRequired
	}

	if strings.ContainsAny(base, "?#") {
		return "", ErrBaseHasQuery
	}

	if req.SourcePageURL == "" {
		return "", ErrSourceRequired
	}

	formatID, hasFormat := req.FormatID.Get()
	if hasFormat && formatID == "" {
		hasFormat = false
	}

	if req.Kind != Audio && !hasFormat {
		return "", ErrFormatRequired
	}

	filename := req.Filename
	if strings.TrimSpace(filename) == "" {
		filename = constant.FallbackFilename
	}

	var b strings.Builder
	b.WriteString(base)
	b.WriteString(req.Kind.path())
	b.WriteString("?url=")
	b.WriteString(url.QueryEscape(req.SourcePageURL))
	if hasFormat {
		b.WriteString("&format_id=")
		b.WriteString(url.QueryEscape(formatID))
	}
	b.WriteString("&filename=")
	b.WriteString(url.QueryEscape(filename))

	return b.String(), nil
}
