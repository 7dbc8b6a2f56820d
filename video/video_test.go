package video

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

const sample = `{
	"id": "7301",
	"title": "Cat vs. cucumber",
	"creator": "kitty",
	"description": null,
	"duration": 14.5,
	"thumbnail": "https://cdn.example.com/t.jpg",
	"webpage_url": "https://www.tiktok.com/@kitty/video/7301",
	"watermark_free_available": true,
	"formats": [
		{"format_id": "h264_540p", "ext": "mp4", "resolution": "576x1024", "format_note": null, "fps": 30, "filesize": 1536, "preference": 1},
		{"format_id": "bytevc1_720p", "ext": "mp4", "resolution": null, "format_note": "nowatermark", "fps": null, "filesize": null, "preference": null}
	],
	"audio_formats": [
		{"format_id": "audio_0", "ext": "m4a", "abr": 128, "filesize": 500}
	]
}`

func TestParse(t *testing.T) {
	Convey("Given a complete metadata document", t, func() {
		m, err := Parse([]byte(sample))

		Convey("It decodes every attribute", func() {
			So(err, ShouldBeNil)
			So(m.Title, ShouldEqual, "Cat vs. cucumber")
			So(m.ID.OrEmpty(), ShouldEqual, "7301")
			So(m.Creator.OrEmpty(), ShouldEqual, "kitty")
			So(m.Description.IsAbsent(), ShouldBeTrue)
			So(m.Duration.MustGet(), ShouldEqual, 14.5)
			So(m.SourcePageURL, ShouldEqual, "https://www.tiktok.com/@kitty/video/7301")
			So(m.WatermarkFree, ShouldBeTrue)
			So(m.Formats, ShouldHaveLength, 2)
			So(m.AudioFormats, ShouldHaveLength, 1)
		})

		Convey("Absent numeric fields stay absent instead of zero", func() {
			f := m.Formats[1]
			So(f.FPS.IsAbsent(), ShouldBeTrue)
			So(f.Size.IsAbsent(), ShouldBeTrue)
			So(f.Preference.IsAbsent(), ShouldBeTrue)
			So(f.Resolution.IsAbsent(), ShouldBeTrue)
			So(f.Note.MustGet(), ShouldEqual, "nowatermark")
		})

		Convey("Present numeric fields keep their values", func() {
			f := m.Formats[0]
			So(f.FPS.MustGet(), ShouldEqual, 30)
			So(f.Size.MustGet(), ShouldEqual, 1536)
			So(f.Preference.MustGet(), ShouldEqual, 1)
			So(m.AudioFormats[0].Bitrate.MustGet(), ShouldEqual, 128)
		})

		Convey("Re-encoding keeps the backend field names", func() {
			data, err := json.Marshal(m)
			So(err, ShouldBeNil)

			var raw map[string]any
			So(json.Unmarshal(data, &raw), ShouldBeNil)
			for _, name := range []string{"title", "creator", "thumbnail", "duration", "webpage_url", "watermark_free_available", "formats", "audio_formats"} {
				So(raw, ShouldContainKey, name)
			}
			So(raw, ShouldNotContainKey, "description")

			format := raw["formats"].([]any)[0].(map[string]any)
			for _, name := range []string{"format_id", "ext", "resolution", "fps", "filesize", "preference"} {
				So(format, ShouldContainKey, name)
			}

			audio := raw["audio_formats"].([]any)[0].(map[string]any)
			for _, name := range []string{"format_id", "ext", "abr", "filesize"} {
				So(audio, ShouldContainKey, name)
			}

			again, err := Parse(data)
			So(err, ShouldBeNil)
			So(again.Formats[0].Size.MustGet(), ShouldEqual, 1536)
			So(again.Formats[1].Preference.IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestParseRejectsInvalidMetadata(t *testing.T) {
	Convey("Given malformed metadata", t, func() {
		cases := []struct{ name, doc string }{
			{"missing title", `{"webpage_url": "https://example.com/v/1", "formats": []}`},
			{"missing webpage_url", `{"title": "x", "formats": []}`},
			{"blank webpage_url", `{"title": "x", "webpage_url": ""}`},
			{"missing format_id", `{"title": "x", "webpage_url": "https://example.com/v/1", "formats": [{"ext": "mp4"}]}`},
			{"duplicate format_id", `{"title": "x", "webpage_url": "https://example.com/v/1", "formats": [{"format_id": "a"}, {"format_id": "a"}]}`},
			{"negative duration", `{"title": "x", "webpage_url": "https://example.com/v/1", "duration": -3}`},
			{"negative filesize", `{"title": "x", "webpage_url": "https://example.com/v/1", "formats": [{"format_id": "a", "filesize": -1}]}`},
			{"oversized filesize", `{"title": "x", "webpage_url": "https://example.com/v/1", "formats": [{"format_id": "a", "filesize": 1e20}]}`},
			{"oversized audio filesize", `{"title": "x", "webpage_url": "https://example.com/v/1", "audio_formats": [{"format_id": "a", "filesize": 1e20}]}`},
			{"mistyped title", `{"title": 42, "webpage_url": "https://example.com/v/1"}`},
		}

		for _, c := range cases {
			Convey("It rejects "+c.name, func() {
				_, err := Parse([]byte(c.doc))
				So(err, ShouldNotBeNil)
				So(errors.Is(err, ErrInvalidMetadata), ShouldBeTrue)
			})
		}

		Convey("Syntax errors are not reported as invalid metadata", func() {
			_, err := Decode(strings.NewReader(`{"title": `))
			So(err, ShouldNotBeNil)
			So(errors.Is(err, ErrInvalidMetadata), ShouldBeFalse)
		})
	})
}

func TestSourcePageURLIsOpaque(t *testing.T) {
	Convey("A schemeless webpage_url is accepted as is", t, func() {
		m, err := Parse([]byte(`{"title": "x", "webpage_url": "tiktok.com/@a/video/1"}`))
		So(err, ShouldBeNil)
		So(m.SourcePageURL, ShouldEqual, "tiktok.com/@a/video/1")
	})
}

func TestZeroRatesAreAbsent(t *testing.T) {
	Convey("Zero fps and bitrate are treated as unknown", t, func() {
		m, err := Parse([]byte(`{"title": "x", "webpage_url": "https://example.com/v/1",
			"formats": [{"format_id": "a", "fps": 0}],
			"audio_formats": [{"format_id": "b", "abr": 0}]}`))
		So(err, ShouldBeNil)
		So(m.Formats[0].FPS.IsAbsent(), ShouldBeTrue)
		So(m.AudioFormats[0].Bitrate.IsAbsent(), ShouldBeTrue)
	})
}

func TestValidate(t *testing.T) {
	Convey("Validate guards constructed values", t, func() {
		m := &Metadata{Title: "x", SourcePageURL: "https://example.com/v/1"}
		So(m.Validate(), ShouldBeNil)

		m.Formats = []Format{{ID: "a"}, {ID: "a"}}
		So(errors.Is(m.Validate(), ErrInvalidMetadata), ShouldBeTrue)

		m.Formats = nil
		m.SourcePageURL = ""
		So(errors.Is(m.Validate(), ErrInvalidMetadata), ShouldBeTrue)

		var none *Metadata
		So(errors.Is(none.Validate(), ErrInvalidMetadata), ShouldBeTrue)
	})
}
