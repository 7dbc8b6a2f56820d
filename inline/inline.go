// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/tikload-cli/tikload/api"
	"github.com/tikload-cli/tikload/format"
	"github.com/tikload-cli/tikload/link"
	"github.com/tikload-cli/tikload/log"
	"github.com/tikload-cli/tikload/util"
	"github.com/tikload-cli/tikload/video"
)

func Run(ctx context.Context, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	// Step 1: Fetch and validate the metadata.
	metadata, err := api.NewOrchestrator(options.Fetcher).Submit(ctx, options.URL)
	if err != nil {
		if errors.Is(err, api.ErrInputEmpty) {
			return errors.New("url is required")
		}
		return err
	}

	// Step 2: Without a selector, describe what can be downloaded.
	picker, ok := options.Picker.Get()
	if !ok {
		if options.Json {
			return writeJson(options.Out, options, metadata, nil)
		}
		return writeTable(options.Out, metadata)
	}

	// Step 3: Resolve the selector and build its link.
	entry, err := picker(metadata)
	if err != nil {
		if errors.Is(err, format.ErrNoFormats) {
			return errors.New(format.EmptyMessage)
		}
		return err
	}

	selected, err := toEntry(options.Base, metadata, entry)
	if err != nil {
		return err
	}

	log.Infof("selected %s %q", selected.Kind, selected.Label)

	if open, ok := options.Open.Get(); ok {
		if err := open(selected.Link); err != nil {
			return fmt.Errorf("open download link: %w", err)
		}
	}

	// Step 4: Emit the result.
	if options.Json {
		return writeJson(options.Out, options, metadata, selected)
	}

	_, err = fmt.Fprintln(options.Out, selected.Link)
	return err
}

func writeTable(out io.Writer, m *video.Metadata) error {
	fmt.Fprintln(out, m.Title)
	if creator, ok := m.Creator.Get(); ok {
		fmt.Fprintf(out, "by @%s\n", creator)
	}
	fmt.Fprintf(out, "duration %s", format.Duration(m.Duration))
	if m.WatermarkFree {
		fmt.Fprint(out, ", watermark-free available")
	}
	fmt.Fprintln(out)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("KIND", "FORMAT ID", "LABEL", "DETAIL")

	videos, err := format.Videos(m)
	if errors.Is(err, format.ErrNoFormats) {
		t.Row(link.Video.String(), "-", format.EmptyMessage, "")
	}

	audios := format.Audios(m)
	fmt.Fprintf(out, "%s, %s\n",
		util.Quantify(len(videos), "video format", "video formats"),
		util.Quantify(len(audios), "audio format", "audio formats"),
	)

	for _, e := range append(videos, audios...) {
		t.Row(e.Kind.String(), e.FormatID.OrElse("-"), e.Label, e.Detail)
	}

	_, err = fmt.Fprintln(out, t.Render())
	return err
}
