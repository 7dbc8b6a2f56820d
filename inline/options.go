package inline

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/tikload-cli/tikload/api"
	"github.com/tikload-cli/tikload/format"
	"github.com/tikload-cli/tikload/link"
	"github.com/tikload-cli/tikload/session"
	"github.com/tikload-cli/tikload/video"
	"golang.org/x/exp/slices"
)

// ErrNoMatch is returned when a selector matches none of the presented entries.
var ErrNoMatch = errors.New("no format matches the selector")

// Picker chooses one download entry of a video.
type Picker func(*video.Metadata) (format.Entry, error)

type Options struct {
	Out     io.Writer
	URL     string
	Base    string
	Fetcher api.Fetcher
	Json    bool
	Picker  mo.Option[Picker]
	// Open, when present, receives the link of the picked entry.
	Open mo.Option[session.Opener]
}

// ParsePicker builds a picker over the video or audio entries.
//
// Selectors:
//
//	"" or best - the first entry (the top ranked video, or the best-effort MP3 for audio)
//	worst      - the last concrete entry
//	[format id] - an exact format id
//	[text]      - the closest label by fuzzy match
func ParsePicker(kind link.Kind, selector string) (Picker, error) {
	selector = strings.TrimSpace(selector)

	var entriesOf func(*video.Metadata) ([]format.Entry, error)
	switch kind {
	case link.Video:
		entriesOf = format.Videos
	case link.Audio:
		entriesOf = func(m *video.Metadata) ([]format.Entry, error) {
			return format.Audios(m), nil
		}
	default:
		return nil, fmt.Errorf("unknown format kind: %s", kind)
	}

	return func(m *video.Metadata) (format.Entry, error) {
		entries, err := entriesOf(m)
		if err != nil {
			return format.Entry{}, err
		}

		return pick(kind, entries, selector)
	}, nil
}

func pick(kind link.Kind, entries []format.Entry, selector string) (format.Entry, error) {
	concrete := lo.Filter(entries, func(e format.Entry, _ int) bool {
		return !e.Synthetic
	})

	switch strings.ToLower(selector) {
	case "", "best":
		if kind == link.Audio {
			return entries[len(entries)-1], nil
		}
		return entries[0], nil
	case "worst":
		if len(concrete) == 0 {
			return format.Entry{}, ErrNoMatch
		}
		return concrete[len(concrete)-1], nil
	}

	if e, ok := lo.Find(entries, func(e format.Entry) bool {
		return e.FormatID.OrEmpty() == selector
	}); ok {
		return e, nil
	}

	labels := lo.Map(entries, func(e format.Entry, _ int) string {
		return e.Label
	})

	ranks := fuzzy.RankFindNormalizedFold(selector, labels)
	if len(ranks) == 0 {
		return format.Entry{}, fmt.Errorf("%w: %q", ErrNoMatch, selector)
	}

	slices.SortStableFunc(ranks, func(a, b fuzzy.Rank) int {
		return a.Distance - b.Distance
	})

	return entries[ranks[0].OriginalIndex], nil
}
