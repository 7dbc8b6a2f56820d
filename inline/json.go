package inline

import (
	"encoding/json"
	"io"

	"github.com/tikload-cli/tikload/format"
	"github.com/tikload-cli/tikload/link"
	"github.com/tikload-cli/tikload/video"
)

type Entry struct {
	// Kind is either video or audio.
	Kind string `json:"kind" jsonschema:"enum=video,enum=audio"`
	// Label is the display label of the entry.
	Label string `json:"label"`
	// Detail is the secondary display text, such as size and frame rate.
	Detail string `json:"detail,omitempty"`
	// FormatID is omitted for the best-effort audio entry.
	FormatID *string `json:"format_id,omitempty"`
	// Link is the download URL of the entry.
	Link string `json:"link"`
}

type Output struct {
	URL      string          `json:"url"`
	Metadata *video.Document `json:"metadata"`
	Videos   []*Entry        `json:"videos"`
	Audios   []*Entry        `json:"audios"`
	// Selected is the entry picked by a selector, if any.
	Selected *Entry `json:"selected,omitempty"`
}

func toEntry(base string, m *video.Metadata, e format.Entry) (*Entry, error) {
	url, err := link.Build(base, format.Request(m, e))
	if err != nil {
		return nil, err
	}

	return &Entry{
		Kind:     e.Kind.String(),
		Label:    e.Label,
		Detail:   e.Detail,
		FormatID: e.FormatID.ToPointer(),
		Link:     url,
	}, nil
}

func toEntries(base string, m *video.Metadata, entries []format.Entry) ([]*Entry, error) {
	result := make([]*Entry, 0, len(entries))
	for _, e := range entries {
		entry, err := toEntry(base, m, e)
		if err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, nil
}

func asJson(options *Options, m *video.Metadata, selected *Entry) ([]byte, error) {
	videos, _ := format.Videos(m)

	videoEntries, err := toEntries(options.Base, m, videos)
	if err != nil {
		return nil, err
	}

	audioEntries, err := toEntries(options.Base, m, format.Audios(m))
	if err != nil {
		return nil, err
	}

	return json.Marshal(&Output{
		URL:      options.URL,
		Metadata: m.Document(),
		Videos:   videoEntries,
		Audios:   audioEntries,
		Selected: selected,
	})
}

func writeJson(out io.Writer, options *Options, m *video.Metadata, selected *Entry) error {
	data, err := asJson(options, m, selected)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
