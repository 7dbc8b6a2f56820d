package mini

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tikload-cli/tikload/api"
	"github.com/tikload-cli/tikload/format"
	"github.com/tikload-cli/tikload/key"
	"github.com/tikload-cli/tikload/video"
)

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
	Duration:      mo.Some(75.0),
	SourcePageURL: "https://www.tiktok.com/@kitty/video/7301",
	Formats:       []video.Format{{ID: "h264", Extension: "mp4", Resolution: mo.Some("720p")}},
	AudioFormats:  []video.AudioFormat{{ID: "audio_0", Extension: "m4a"}},
}

func TestSubmit(t *testing.T) {
	Convey("Given a mini session", t, func() {
		var out bytes.Buffer
		f := &fakeFetcher{metadata: clip}
		m := newMini(&Options{Base: "http://localhost:8000/api", Fetcher: f, Open: func(string) error { return nil }}, &out)
		m.setState(inputState)

		Convey("A successful submission prints the header and offers formats", func() {
			m.submit("https://www.tiktok.com/@kitty/video/7301")
			So(m.state, ShouldEqual, formatSelectState)
			So(f.calls, ShouldEqual, 1)
			So(out.String(), ShouldContainSubstring, "Cat vs. cucumber")
			So(out.String(), ShouldContainSubstring, "@kitty")
			So(out.String(), ShouldContainSubstring, "1:15")
		})

		Convey("A blank submission stays at the prompt without a request", func() {
			m.submit("  ")
			So(m.state, ShouldEqual, inputState)
			So(f.calls, ShouldEqual, 0)
			So(out.String(), ShouldBeEmpty)
		})

		Convey("A failed submission prints its message and offers a retry", func() {
			f.metadata, f.err = nil, errors.New("connection refused")
			m.submit("https://example.com/v/1")
			So(m.state, ShouldEqual, errorState)
			So(out.String(), ShouldContainSubstring, api.TransportMessage)
			So(m.input, ShouldEqual, "https://example.com/v/1")
		})

		Convey("Opener failures are printed as notices", func() {
			failing := newMini(&Options{Base: "http://localhost:8000/api", Fetcher: f, Open: func(string) error { return errors.New("no handler") }}, &out)
			failing.submit("https://example.com/v/1")
			_, err := failing.machine.Download(format.Request(clip, format.Audios(clip)[0]))
			So(err, ShouldBeNil)
			failing.machine.Wait()
			So(out.String(), ShouldContainSubstring, "no handler")
		})
	})
}

func TestChoices(t *testing.T) {
	Convey("Given metadata with video and audio formats", t, func() {
		Convey("Audio entries follow videos when enabled", func() {
			viper.Set(key.DownloadAudioEnabled, true)
			entries, err := choices(clip)
			So(err, ShouldBeNil)
			So(entries, ShouldHaveLength, 3)
			So(entries[0].Label, ShouldEqual, "720p")
			So(entries[2].Label, ShouldEqual, format.BestAudio)
		})

		Convey("Only videos are offered when audio is disabled", func() {
			viper.Set(key.DownloadAudioEnabled, false)
			entries, err := choices(clip)
			So(err, ShouldBeNil)
			So(entries, ShouldHaveLength, 1)
		})

		Convey("Missing video formats are signalled but audio is still offered", func() {
			viper.Set(key.DownloadAudioEnabled, true)
			entries, err := choices(&video.Metadata{Title: "x", SourcePageURL: "https://example.com/v/1"})
			So(err, ShouldEqual, format.ErrNoFormats)
			So(entries, ShouldHaveLength, 1)
		})
	})
}

func TestMenu(t *testing.T) {
	Convey("Menu indices resolve to entries first, then binds", t, func() {
		entries := []format.Entry{{Label: "720p"}, {Label: "MP3 (best)"}}

		options := menuOptions(entries, newLink, quit)
		So(options, ShouldHaveLength, 4)
		So(options[0], ShouldContainSubstring, "720p")
		So(options[3], ShouldContainSubstring, "Quit")

		b, entry := resolve(1, entries, []*bind{newLink, quit})
		So(b, ShouldBeNil)
		So(entry.Label, ShouldEqual, "MP3 (best)")

		b, _ = resolve(3, entries, []*bind{newLink, quit})
		So(b, ShouldEqual, quit)
	})

	Convey("Quit inputs are recognized", t, func() {
		So(quitInput(" q "), ShouldBeTrue)
		So(quitInput("quit"), ShouldBeTrue)
		So(quitInput("https://example.com/q"), ShouldBeFalse)
	})
}
