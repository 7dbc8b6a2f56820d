// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wrap"
	"github.com/tikload-cli/tikload/color"
	"github.com/tikload-cli/tikload/format"
	"github.com/tikload-cli/tikload/icon"
	"github.com/tikload-cli/tikload/style"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
	headerStyle           = lipgloss.NewStyle().Padding(1, 2, 0, 2)
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case searchState:
		output = b.viewSearch()
	case loadingState:
		output = b.viewLoading()
	case videosState:
		output = b.viewVideos()
	case audiosState:
		output = b.viewAudios()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewSearch() string {
	return b.renderLines(
		true,
		[]string{
			style.Title("Download a video"),
			"",
			b.inputC.View(),
		},
	)
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(
		true,
		[]string{
			style.Title("Loading"),
			"",
			b.spinnerC.View() + " Fetching video details for " + style.Fg(color.Purple)(truncate.StringWithTail(b.session.Input, uint(max(b.width-30, 10)), "…")),
		},
	)
}

func (b *statefulBubble) viewVideos() string {
	if b.noFormats {
		lines := append(b.header(), "", style.Faint(format.EmptyMessage))
		return b.renderLines(true, lines)
	}

	return headerStyle.Render(strings.Join(b.header(), "\n")) + "\n" + listExtraPaddingStyle.Render(b.videosC.View())
}

func (b *statefulBubble) viewAudios() string {
	return headerStyle.Render(strings.Join(b.header(), "\n")) + "\n" + listExtraPaddingStyle.Render(b.audiosC.View())
}

// header summarizes the current result in headerHeight lines.
func (b *statefulBubble) header() []string {
	metadata := b.session.Metadata
	if metadata == nil {
		return nil
	}

	title := style.Bold(truncate.StringWithTail(metadata.Title, uint(max(b.width, 10)), "…"))

	details := []string{format.Duration(metadata.Duration)}
	if creator, ok := metadata.Creator.Get(); ok {
		details = append([]string{"@" + creator}, details...)
	}
	if metadata.WatermarkFree {
		details = append(details, style.Tag(style.Base, style.Green)("watermark-free"))
	}

	return []string{
		title,
		style.Faint(strings.Join(details, " • ")),
	}
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	errorMsg := wrap.String(errorStyle.Render(b.session.Message), b.width)
	return b.renderLines(
		true,
		append([]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " Could not fetch the video:",
			"",
		},
			errorMsg,
		),
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
