// Package video defines the typed metadata model returned by the download service.
package video

import (
	"errors"
	"fmt"

	"github.com/samber/mo"
)

// ErrInvalidMetadata is returned when a payload lacks required attributes or carries out-of-range values.
var ErrInvalidMetadata = errors.New("invalid metadata")

// Metadata describes a fetched video and the media variants the backend can deliver for it.
type Metadata struct {
	// ID is the backend identifier of the video, when reported.
	ID mo.Option[string]
	// Title is the human-readable title. Never empty.
	Title string
	// Creator is the uploader or author name.
	Creator mo.Option[string]
	// Description is the free-form caption.
	Description mo.Option[string]
	// Thumbnail is the URL of a preview image.
	Thumbnail mo.Option[string]
	// Duration is the playback length in seconds.
	Duration mo.Option[float64]
	// SourcePageURL is the canonical page URL used for every download request. Never empty.
	SourcePageURL string
	// WatermarkFree reports whether a variant without the platform watermark is available.
	WatermarkFree bool
	// Formats are the video variants in backend order.
	Formats []Format
	// AudioFormats are the audio-only variants in backend order.
	AudioFormats []AudioFormat
}

// Format is a single video variant.
type Format struct {
	ID         string
	Extension  string
	Resolution mo.Option[string]
	Note       mo.Option[string]
	FPS        mo.Option[float64]
	Size       mo.Option[int64]
	// Preference ranks variants, higher is better. Absent ranks as 0.
	Preference mo.Option[float64]
	Bitrate    mo.Option[float64]
	VideoCodec mo.Option[string]
	AudioCodec mo.Option[string]
}

// AudioFormat is a single audio-only variant.
type AudioFormat struct {
	ID        string
	Extension string
	// Bitrate is the average bitrate in kbps.
	Bitrate mo.Option[float64]
	Size    mo.Option[int64]
	Note    mo.Option[string]
}

// Validate checks the invariants of an already constructed value.
func (m *Metadata) Validate() error {
	if m == nil {
		return fmt.Errorf("%w: nil metadata", ErrInvalidMetadata)
	}

	if m.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidMetadata)
	}

	if m.SourcePageURL == "" {
		return fmt.Errorf("%w: webpage_url is required", ErrInvalidMetadata)
	}

	seen := make(map[string]struct{}, len(m.Formats))
	for i, f := range m.Formats {
		if f.ID == "" {
			return fmt.Errorf("%w: formats[%d].format_id is required", ErrInvalidMetadata, i)
		}
		if _, dup := seen[f.ID]; dup {
			return fmt.Errorf("%w: duplicate format_id %q", ErrInvalidMetadata, f.ID)
		}
		seen[f.ID] = struct{}{}
	}

	return nil
}

// String returns the title for display.
func (m *Metadata) String() string {
	return m.Title
}
