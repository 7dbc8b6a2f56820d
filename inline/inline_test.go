package inline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/tikload-cli/tikload/api"
	"github.com/tikload-cli/tikload/format"
	"github.com/tikload-cli/tikload/link"
	"github.com/tikload-cli/tikload/session"
	"github.com/tikload-cli/tikload/video"
)

const base = "http://localhost:8000/api"

type fakeFetcher struct {
	calls    int
	metadata *video.Metadata
	err      error
}

func (f *fakeFetcher) Fetch(context.Context, string) (*video.Metadata, error) {
	f.calls++
	return f.metadata, f.err
}

var clip = &video.Metadata{
	Title:         "Cat vs. cucumber",
	Creator:       mo.Some("kitty"),
	Duration:      mo.Some(14.5),
	SourcePageURL: "https://www.tiktok.com/@kitty/video/7301",
	WatermarkFree: true,
	Formats: []video.Format{
		{ID: "low", Extension: "mp4", Resolution: mo.Some("540p"), Preference: mo.Some(1.0)},
		{ID: "high", Extension: "mp4", Resolution: mo.Some("1080p"), Preference: mo.Some(5.0)},
	},
	AudioFormats: []video.AudioFormat{
		{ID: "audio_0", Extension: "m4a", Bitrate: mo.Some(128.0)},
	},
}

func mustPicker(kind link.Kind, selector string) Picker {
	p, err := ParsePicker(kind, selector)
	So(err, ShouldBeNil)
	return p
}

func TestParsePicker(t *testing.T) {
	Convey("Given a video with two formats", t, func() {
		Convey("best picks the top ranked video", func() {
			for _, selector := range []string{"", "best", " BEST "} {
				e, err := mustPicker(link.Video, selector)(clip)
				So(err, ShouldBeNil)
				So(e.FormatID.OrEmpty(), ShouldEqual, "high")
			}
		})

		Convey("worst picks the lowest ranked video", func() {
			e, err := mustPicker(link.Video, "worst")(clip)
			So(err, ShouldBeNil)
			So(e.FormatID.OrEmpty(), ShouldEqual, "low")
		})

		Convey("An exact format id wins", func() {
			e, err := mustPicker(link.Video, "low")(clip)
			So(err, ShouldBeNil)
			So(e.Label, ShouldEqual, "540p")
		})

		Convey("Labels are matched fuzzily", func() {
			e, err := mustPicker(link.Video, "1080")(clip)
			So(err, ShouldBeNil)
			So(e.FormatID.OrEmpty(), ShouldEqual, "high")
		})

		Convey("An unmatched selector is an error", func() {
			_, err := mustPicker(link.Video, "4k hdr")(clip)
			So(errors.Is(err, ErrNoMatch), ShouldBeTrue)
		})

		Convey("Audio best is the best-effort MP3", func() {
			e, err := mustPicker(link.Audio, "best")(clip)
			So(err, ShouldBeNil)
			So(e.Synthetic, ShouldBeTrue)
			So(e.FormatID.IsAbsent(), ShouldBeTrue)
		})

		Convey("Audio worst skips the synthetic entry", func() {
			e, err := mustPicker(link.Audio, "worst")(clip)
			So(err, ShouldBeNil)
			So(e.FormatID.OrEmpty(), ShouldEqual, "audio_0")
		})

		Convey("Audio labels are matched fuzzily", func() {
			e, err := mustPicker(link.Audio, "m4a")(clip)
			So(err, ShouldBeNil)
			So(e.FormatID.OrEmpty(), ShouldEqual, "audio_0")
		})

		Convey("A video without formats has nothing to pick", func() {
			_, err := mustPicker(link.Video, "best")(&video.Metadata{Title: "x", SourcePageURL: "https://example.com/v/1"})
			So(errors.Is(err, format.ErrNoFormats), ShouldBeTrue)
		})
	})

	Convey("Unknown kinds are rejected", t, func() {
		_, err := ParsePicker(link.Kind(0), "best")
		So(err, ShouldNotBeNil)
	})
}

func TestRun(t *testing.T) {
	Convey("Given a fetcher that resolves a video", t, func() {
		f := &fakeFetcher{metadata: clip}
		var out bytes.Buffer
		options := &Options{
			Out:     &out,
			URL:     "https://www.tiktok.com/@kitty/video/7301",
			Base:    base,
			Fetcher: f,
		}

		Convey("Without a selector it prints a table of every entry", func() {
			So(Run(context.Background(), options), ShouldBeNil)
			So(f.calls, ShouldEqual, 1)
			So(out.String(), ShouldContainSubstring, "Cat vs. cucumber")
			So(out.String(), ShouldContainSubstring, "by @kitty")
			So(out.String(), ShouldContainSubstring, "1080p")
			So(out.String(), ShouldContainSubstring, format.BestAudio)
			So(out.String(), ShouldContainSubstring, "watermark-free")
		})

		Convey("JSON output lists every entry with its link", func() {
			options.Json = true
			So(Run(context.Background(), options), ShouldBeNil)

			var output Output
			So(json.Unmarshal(out.Bytes(), &output), ShouldBeNil)
			So(output.URL, ShouldEqual, options.URL)
			So(output.Metadata.Title, ShouldEqual, clip.Title)
			So(output.Videos, ShouldHaveLength, 2)
			So(*output.Videos[0].FormatID, ShouldEqual, "high")
			So(output.Audios, ShouldHaveLength, 2)
			So(output.Audios[1].FormatID, ShouldBeNil)
			So(output.Selected, ShouldBeNil)

			u, err := url.Parse(output.Videos[0].Link)
			So(err, ShouldBeNil)
			So(u.Path, ShouldEqual, "/api/download")
			So(u.Query().Get("url"), ShouldEqual, clip.SourcePageURL)
			So(u.Query().Get("format_id"), ShouldEqual, "high")
			So(u.Query().Get("filename"), ShouldEqual, clip.Title)
		})

		Convey("A selector prints the link of the picked entry", func() {
			options.Picker = mo.Some(mustPicker(link.Video, "low"))
			So(Run(context.Background(), options), ShouldBeNil)

			u, err := url.Parse(out.String()[:out.Len()-1])
			So(err, ShouldBeNil)
			So(u.Query().Get("format_id"), ShouldEqual, "low")
		})

		Convey("A selector with JSON output marks the selected entry", func() {
			options.Json = true
			options.Picker = mo.Some(mustPicker(link.Audio, "best"))
			So(Run(context.Background(), options), ShouldBeNil)

			var output Output
			So(json.Unmarshal(out.Bytes(), &output), ShouldBeNil)
			So(output.Selected, ShouldNotBeNil)
			So(output.Selected.Kind, ShouldEqual, "audio")
			So(output.Selected.FormatID, ShouldBeNil)
		})

		Convey("The picked link is handed to the opener", func() {
			var opened []string
			options.Picker = mo.Some(mustPicker(link.Audio, "audio_0"))
			options.Open = mo.Some[session.Opener](func(u string) error {
				opened = append(opened, u)
				return nil
			})

			So(Run(context.Background(), options), ShouldBeNil)
			So(opened, ShouldHaveLength, 1)

			u, err := url.Parse(opened[0])
			So(err, ShouldBeNil)
			So(u.Path, ShouldEqual, "/api/audio")
			So(u.Query().Get("format_id"), ShouldEqual, "audio_0")
		})

		Convey("Opener errors are reported", func() {
			options.Picker = mo.Some(mustPicker(link.Video, "best"))
			options.Open = mo.Some[session.Opener](func(string) error {
				return errors.New("no browser")
			})

			So(Run(context.Background(), options), ShouldNotBeNil)
		})
	})

	Convey("Given a blank url", t, func() {
		f := &fakeFetcher{metadata: clip}
		err := Run(context.Background(), &Options{Out: &bytes.Buffer{}, URL: "  ", Base: base, Fetcher: f})

		Convey("No request is issued", func() {
			So(err, ShouldNotBeNil)
			So(f.calls, ShouldEqual, 0)
		})
	})

	Convey("Given a failing fetcher", t, func() {
		f := &fakeFetcher{err: &api.Failure{Kind: api.RequestFailed, Message: "Unsupported URL", Status: 400}}
		err := Run(context.Background(), &Options{Out: &bytes.Buffer{}, URL: "https://example.com", Base: base, Fetcher: f})

		Convey("The failure message is surfaced", func() {
			So(err, ShouldNotBeNil)
			So(api.Message(err), ShouldEqual, "Unsupported URL")
		})
	})

	Convey("Given a video without formats and a video selector", t, func() {
		f := &fakeFetcher{metadata: &video.Metadata{Title: "x", SourcePageURL: "https://example.com/v/1"}}
		err := Run(context.Background(), &Options{
			Out:     &bytes.Buffer{},
			URL:     "https://example.com/v/1",
			Base:    base,
			Fetcher: f,
			Picker:  mo.Some(mustPicker(link.Video, "best")),
		})

		Convey("The empty message is returned", func() {
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldEqual, format.EmptyMessage)
		})
	})
}
