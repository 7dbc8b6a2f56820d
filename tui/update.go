// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"errors"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tikload-cli/tikload/api"
	"github.com/tikload-cli/tikload/format"
	"github.com/tikload-cli/tikload/session"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Notifications are handled in every state.
	if uiCmd := b.notifier.Update(msg); uiCmd != nil {
		cmd = uiCmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}
	}

	var stateCmd tea.Cmd
	switch b.state {
	case searchState:
		stateCmd = b.updateSearch(msg)
	case loadingState:
		stateCmd = b.updateLoading(msg)
	case videosState:
		stateCmd = b.updateFormats(msg, &b.videosC)
	case audiosState:
		stateCmd = b.updateFormats(msg, &b.audiosC)
	case errorState:
		stateCmd = b.updateError(msg)
	}

	if b.quitting {
		return b, tea.Quit
	}

	return b, tea.Batch(cmd, stateCmd)
}

func (b *statefulBubble) updateSearch(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			return b.dispatch(session.Submit{Input: b.inputC.Value()})
		case bubblesKey.Matches(msg, b.keymap.back):
			if b.inputC.Value() != "" {
				b.inputC.SetValue("")
				return nil
			}
			// Back to the last result or error, if there is one.
			if b.session.Kind != session.KindIdle {
				b.sync()
				return nil
			}
		}
	}

	b.inputC, cmd = b.inputC.Update(msg)
	return cmd
}

// updateLoading ignores every key but force quit, so no second submission can start.
func (b *statefulBubble) updateLoading(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case fetchedMsg:
		switch {
		case errors.Is(msg.err, api.ErrBusy):
			// the fetch already in flight settles the session
			return nil
		case errors.Is(msg.err, api.ErrInputEmpty):
			b.session = session.Idle()
			return b.sync()
		}

		if msg.err != nil {
			return b.dispatch(session.Rejected{Message: api.Message(msg.err)})
		}

		return b.dispatch(session.Resolved{Metadata: msg.metadata})
	case tea.KeyMsg:
		return nil
	}

	b.spinnerC, cmd = b.spinnerC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateFormats(msg tea.Msg, l *list.Model) tea.Cmd {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			b.quitting = true
			return nil
		case bubblesKey.Matches(msg, b.keymap.download):
			entry, ok := selectedEntry(l)
			if !ok {
				return nil
			}
			return b.dispatch(session.Download{Request: format.Request(b.session.Metadata, entry)})
		case bubblesKey.Matches(msg, b.keymap.switchList):
			if b.state == videosState {
				b.setState(audiosState)
			} else {
				b.setState(videosState)
			}
			return nil
		case bubblesKey.Matches(msg, b.keymap.newLink), bubblesKey.Matches(msg, b.keymap.back):
			b.setState(searchState)
			b.inputC.SetValue("")
			return textinput.Blink
		case bubblesKey.Matches(msg, b.keymap.up):
			if n := len(l.Items()); n > 0 && l.Index() == 0 {
				l.Select(n - 1)
				return nil
			}
		case bubblesKey.Matches(msg, b.keymap.down):
			if n := len(l.Items()); n > 0 && l.Index() == n-1 {
				l.Select(0)
				return nil
			}
		}
	}

	*l, cmd = l.Update(msg)
	return cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			b.quitting = true
		case bubblesKey.Matches(msg, b.keymap.retry):
			return b.dispatch(session.Submit{Input: b.inputC.Value()})
		case bubblesKey.Matches(msg, b.keymap.newLink), bubblesKey.Matches(msg, b.keymap.back):
			b.setState(searchState)
			return textinput.Blink
		}
	}

	return nil
}

func selectedEntry(l *list.Model) (format.Entry, bool) {
	item, ok := l.SelectedItem().(*listItem)
	if !ok {
		return format.Entry{}, false
	}

	entry, ok := item.internal.(format.Entry)
	return entry, ok
}
