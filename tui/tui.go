// Package tui provides the primary terminal user interface implementation.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tikload-cli/tikload/api"
	"github.com/tikload-cli/tikload/session"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	// URL is submitted right away when set.
	URL string
	// Base is the API base URL download links are built against.
	Base    string
	Fetcher api.Fetcher
	Open    session.Opener
}

// Run initializes and executes the primary Bubble Tea application loop.
func Run(options *Options) error {
	_, err := tea.NewProgram(newBubble(options), tea.WithAltScreen()).Run()
	return err
}
