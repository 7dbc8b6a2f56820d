// Package format ranks media variants and renders them as display entries.
package format

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/tikload-cli/tikload/link"
	"github.com/tikload-cli/tikload/video"
	"golang.org/x/exp/slices"
)

// ErrNoFormats signals that a video has nothing to download.
// Callers render EmptyMessage instead of an empty list.
var ErrNoFormats = errors.New("no downloadable video formats")

const (
	EmptyMessage = "No downloadable video formats were found."
	BestAudio    = "MP3 (best)"
	Unknown      = "—"
	Adaptive     = "Adaptive"
	separator    = " • "
)

// Entry is a display-ready download option.
type Entry struct {
	Kind   link.Kind
	Label  string
	Detail string
	// FormatID is absent for the synthetic best-audio entry.
	FormatID  mo.Option[string]
	Extension string
	Synthetic bool
}

func (e Entry) String() string {
	if e.Detail == "" {
		return e.Label
	}
	return e.Label + separator + e.Detail
}

// Rank returns the formats ordered by preference, highest first.
// Absent preference counts as 0 and ties keep the backend order.
// The input slice is left untouched.
func Rank(formats []video.Format) []video.Format {
	ranked := slices.Clone(formats)
	slices.SortStableFunc(ranked, func(a, b video.Format) int {
		pa, pb := a.Preference.OrEmpty(), b.Preference.OrEmpty()
		switch {
		case pa > pb:
			return -1
		case pa < pb:
			return 1
		default:
			return 0
		}
	})
	return ranked
}

// Videos presents the ranked video formats of m.
func Videos(m *video.Metadata) ([]Entry, error) {
	if m == nil || len(m.Formats) == 0 {
		return nil, ErrNoFormats
	}

	return lo.Map(Rank(m.Formats), func(f video.Format, _ int) Entry {
		return Entry{
			Kind:      link.Video,
			Label:     videoLabel(f),
			Detail:    videoDetail(f),
			FormatID:  mo.Some(f.ID),
			Extension: f.Extension,
		}
	}), nil
}

func videoLabel(f video.Format) string {
	if resolution, ok := f.Resolution.Get(); ok {
		return resolution
	}

	if note, ok := f.Note.Get(); ok {
		return note
	}

	return strings.ToUpper(f.Extension)
}

func videoDetail(f video.Format) string {
	rate := Adaptive
	if fps, ok := f.FPS.Get(); ok {
		rate = FPS(fps) + " fps"
	}
	return Size(f.Size) + separator + rate
}

// Audios presents the audio formats of m in backend order,
// followed by exactly one best-effort MP3 entry.
func Audios(m *video.Metadata) []Entry {
	var formats []video.AudioFormat
	if m != nil {
		formats = m.AudioFormats
	}

	entries := make([]Entry, 0, len(formats)+1)
	for _, f := range formats {
		bitrate := "Audio"
		if abr, ok := f.Bitrate.Get(); ok {
			bitrate = FPS(abr) + " kbps"
		}

		entries = append(entries, Entry{
			Kind:      link.Audio,
			Label:     strings.ToUpper(f.Extension) + separator + bitrate,
			Detail:    Size(f.Size),
			FormatID:  mo.Some(f.ID),
			Extension: f.Extension,
		})
	}

	return append(entries, Entry{
		Kind:      link.Audio,
		Label:     BestAudio,
		Extension: "mp3",
		Synthetic: true,
	})
}

// Request turns a presented entry into a download request for m.
func Request(m *video.Metadata, e Entry) link.Request {
	return link.Request{
		Kind:          e.Kind,
		SourcePageURL: m.SourcePageURL,
		FormatID:      e.FormatID,
		Filename:      m.Title,
	}
}

var units = []string{"B", "KB", "MB", "GB"}

// Size renders a byte count with 1024-based units.
// Absent and zero sizes render as Unknown.
func Size(size mo.Option[int64]) string {
	bytes, ok := size.Get()
	if !ok || bytes <= 0 {
		return Unknown
	}

	value := float64(bytes)
	unit := 0
	for value >= 1024 && unit < len(units)-1 {
		value /= 1024
		unit++
	}

	if unit == 0 || value >= 10 {
		return fmt.Sprintf("%.0f %s", value, units[unit])
	}

	return strings.TrimSuffix(strconv.FormatFloat(value, 'f', 1, 64), ".0") + " " + units[unit]
}

// FPS renders a frame rate without trailing zeros. Bitrates use it too.
func FPS(fps float64) string {
	return strconv.FormatFloat(fps, 'f', -1, 64)
}

// Duration renders seconds as m:ss, or h:mm:ss for an hour and more.
func Duration(seconds mo.Option[float64]) string {
	s, ok := seconds.Get()
	if !ok || s < 0 {
		return Unknown
	}

	total := int(math.Round(s))
	h, m, sec := total/3600, total%3600/60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%d:%02d", m, sec)
}
