// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tikload-cli/tikload/session"
)

// Init focuses the link input and submits the link passed on the command line, if any.
func (b *statefulBubble) Init() tea.Cmd {
	if b.options.URL != "" {
		b.inputC.SetValue(b.options.URL)
		return b.dispatch(session.Submit{Input: b.options.URL})
	}

	return textinput.Blink
}
