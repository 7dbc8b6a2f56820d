// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
	"github.com/tikload-cli/tikload/format"
	"github.com/tikload-cli/tikload/icon"
	"github.com/tikload-cli/tikload/key"
	"github.com/tikload-cli/tikload/style"
)

// listItem implements the list.Item interface, wrapping a presented format entry.
type listItem struct {
	internal interface{}
}

func (t *listItem) getMark() string {
	switch e := t.internal.(type) {
	case format.Entry:
		if e.Synthetic {
			return lipgloss.NewStyle().Bold(true).Foreground(style.AccentColor).Render(icon.Get(icon.Mark))
		}
		return ""
	default:
		return ""
	}
}

// Title retrieves the primary display text for the list item.
func (t *listItem) Title() (title string) {
	switch e := t.internal.(type) {
	case format.Entry:
		title = e.Label
		if id, ok := e.FormatID.Get(); ok && viper.GetBool(key.TUIShowFormatIDs) {
			title = fmt.Sprintf("%s %s", title, style.Faint(id))
		}
		if mark := t.getMark(); mark != "" {
			title = fmt.Sprintf("%s %s", title, mark)
		}
	case string:
		title = e
	default:
		title = t.FilterValue()
	}

	return
}

// Description retrieves the secondary metadata for the list item.
func (t *listItem) Description() (description string) {
	switch e := t.internal.(type) {
	case format.Entry:
		if e.Synthetic {
			description = "Let the service pick and convert the best audio"
		} else {
			description = e.Detail
		}
	}

	return
}

// FilterValue returns the string used for list filtering.
func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case format.Entry:
		return e.Label
	case string:
		return e
	default:
		return ""
	}
}
