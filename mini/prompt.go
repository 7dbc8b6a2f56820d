// Package mini implements a lightweight, line-oriented interface for fetching and downloading videos.
package mini

import (
	"fmt"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/muesli/reflow/truncate"
	"github.com/tikload-cli/tikload/color"
	"github.com/tikload-cli/tikload/format"
	"github.com/tikload-cli/tikload/icon"
	"github.com/tikload-cli/tikload/link"
	"github.com/tikload-cli/tikload/style"
	"github.com/tikload-cli/tikload/video"
)

// bind is a menu option that is not a download entry.
type bind struct {
	label string
}

func (b *bind) String() string {
	return b.label
}

var (
	retry   = &bind{label: "Retry"}
	newLink = &bind{label: "New link"}
	quit    = &bind{label: "Quit"}
)

// menuOptions renders entries followed by binds as select options.
func menuOptions(entries []format.Entry, binds ...*bind) []string {
	options := make([]string, 0, len(entries)+len(binds))
	for _, e := range entries {
		options = append(options, kindIcon(e.Kind)+" "+truncate.StringWithTail(e.String(), uint(truncateAt), "…"))
	}

	for _, b := range binds {
		options = append(options, style.Fg(color.Yellow)(b.String()))
	}

	return options
}

func kindIcon(kind link.Kind) string {
	if kind == link.Audio {
		return icon.Get(icon.Audio)
	}
	return icon.Get(icon.Video)
}

// resolve maps a selected index back to either an entry or a bind.
func resolve(index int, entries []format.Entry, binds []*bind) (*bind, format.Entry) {
	if index < len(entries) {
		return nil, entries[index]
	}

	return binds[index-len(entries)], format.Entry{}
}

func menu(entries []format.Entry, binds ...*bind) (*bind, format.Entry, error) {
	prompt := &survey.Select{
		Message:  "Choose",
		Options:  menuOptions(entries, binds...),
		PageSize: 15,
	}

	var index int
	if err := survey.AskOne(prompt, &index); err != nil {
		return nil, format.Entry{}, err
	}

	b, entry := resolve(index, entries, binds)
	return b, entry, nil
}

func getInput(prompt string) (string, error) {
	input := &survey.Input{Message: strings.TrimSpace(prompt)}

	var value string
	if err := survey.AskOne(input, &value); err != nil {
		return "", err
	}

	return value, nil
}

func title(out io.Writer, t string) {
	fmt.Fprintln(out, style.Fg(color.Purple)(style.Bold(t)))
}

func fail(out io.Writer, t string) {
	fmt.Fprintln(out, icon.Get(icon.Fail)+" "+style.Fg(color.Red)(t))
}

func success(out io.Writer, t string) {
	fmt.Fprintln(out, icon.Get(icon.Success)+" "+style.Fg(color.Green)(t))
}

// progress prints an erasable line and returns its eraser.
func progress(out io.Writer, t string) (eraser func()) {
	msg := icon.Get(icon.Progress) + " " + t
	fmt.Fprintf(out, "\r%s", msg)
	return func() {
		fmt.Fprintf(out, "\r%s\r", strings.Repeat(" ", len(msg)))
	}
}

func header(out io.Writer, metadata *video.Metadata) {
	if metadata == nil {
		return
	}

	fmt.Fprintln(out, style.Bold(truncate.StringWithTail(metadata.Title, uint(truncateAt), "…")))

	details := []string{format.Duration(metadata.Duration)}
	if creator, ok := metadata.Creator.Get(); ok {
		details = append([]string{"@" + creator}, details...)
	}
	if metadata.WatermarkFree {
		details = append(details, "watermark-free")
	}
	fmt.Fprintln(out, style.Faint(strings.Join(details, " • ")))
}
