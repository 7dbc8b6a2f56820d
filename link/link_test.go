package link

import (
	"net/url"
	"strings"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

const base = "http://localhost:8000/api"

func TestBuildVideo(t *testing.T) {
	Convey("Given a video request with unsafe characters", t, func() {
		req := Request{
			Kind:          Video,
			SourcePageURL: "https://www.tiktok.com/@kitty/video/7301?lang=en&is_copy_url=1",
			FormatID:      mo.Some("h264 540p+audio/best"),
			Filename:      "Cat vs. cucumber & friends #1",
		}

		Convey("When the link is built", func() {
			raw, err := Build(base, req)
			So(err, ShouldBeNil)

			Convey("Then it targets the download endpoint", func() {
				So(raw, ShouldStartWith, base+"/download?")
			})

			Convey("Then parameters appear in a fixed order", func() {
				query := raw[strings.Index(raw, "?")+1:]
				names := make([]string, 0, 3)
				for _, pair := range strings.Split(query, "&") {
					names = append(names, strings.SplitN(pair, "=", 2)[0])
				}
				So(names, ShouldResemble, []string{"url", "format_id", "filename"})
			})

			Convey("Then every value decodes back to the original", func() {
				parsed, err := url.Parse(raw)
				So(err, ShouldBeNil)
				q := parsed.Query()
				So(q.Get("url"), ShouldEqual, req.SourcePageURL)
				So(q.Get("format_id"), ShouldEqual, "h264 540p+audio/best")
				So(q.Get("filename"), ShouldEqual, req.Filename)
			})

			Convey("Then values are escaped exactly once", func() {
				So(raw, ShouldNotContainSubstring, "%25")
				So(raw, ShouldContainSubstring, "url=https%3A%2F%2Fwww.tiktok.com")
			})
		})
	})

	Convey("A video request without a format id is rejected", t, func() {
		_, err := Build(base, Request{Kind: Video, SourcePageURL: "https://example.com/v/1", Filename: "x"})
		So(err, ShouldEqual, ErrFormatRequired)

		_, err = Build(base, Request{Kind: Video, SourcePageURL: "https://example.com/v/1", FormatID: mo.Some("")})
		So(err, ShouldEqual, ErrFormatRequired)
	})
}

func TestBuildAudio(t *testing.T) {
	Convey("Given audio requests", t, func() {
		source := "https://example.com/v/1"

		Convey("A concrete audio format carries its format id", func() {
			raw, err := Build(base, Request{Kind: Audio, SourcePageURL: source, FormatID: mo.Some("audio_0"), Filename: "song"})
			So(err, ShouldBeNil)
			So(raw, ShouldEqual, base+"/audio?url=https%3A%2F%2Fexample.com%2Fv%2F1&format_id=audio_0&filename=song")
		})

		Convey("The best-effort request omits format_id", func() {
			raw, err := Build(base, Request{Kind: Audio, SourcePageURL: source, Filename: "song"})
			So(err, ShouldBeNil)
			So(raw, ShouldEqual, base+"/audio?url=https%3A%2F%2Fexample.com%2Fv%2F1&filename=song")
			So(raw, ShouldNotContainSubstring, "format_id")
		})
	})
}

func TestBuildEdges(t *testing.T) {
	Convey("Given edge case inputs", t, func() {
		req := Request{Kind: Video, SourcePageURL: "https://example.com/v/1", FormatID: mo.Some("a")}

		Convey("An empty filename falls back to the backend default", func() {
			raw, err := Build(base, req)
			So(err, ShouldBeNil)
			So(raw, ShouldEndWith, "&filename=download")
		})

		Convey("Trailing slashes on the base are trimmed", func() {
			raw, err := Build(base+"//", req)
			So(err, ShouldBeNil)
			So(raw, ShouldStartWith, base+"/download?")
		})

		Convey("Missing inputs are rejected", func() {
			_, err := Build("  ", req)
			So(err, ShouldEqual, ErrBaseRequired)

			_, err = Build(base+"?key=1", req)
			So(err, ShouldEqual, ErrBaseHasQuery)

			req.SourcePageURL = ""
			_, err = Build(base, req)
			So(err, ShouldEqual, ErrSourceRequired)
		})
	})
}
