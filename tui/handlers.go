// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tikload-cli/tikload/icon"
	"github.com/tikload-cli/tikload/internal/ui"
	"github.com/tikload-cli/tikload/link"
	"github.com/tikload-cli/tikload/log"
	"github.com/tikload-cli/tikload/video"
)

// fetchedMsg carries the outcome of a metadata submission.
type fetchedMsg struct {
	metadata *video.Metadata
	err      error
}

// fetch resolves input through the orchestrator off the update loop.
func (b *statefulBubble) fetch(input string) tea.Cmd {
	orchestrator := b.orchestrator
	return func() tea.Msg {
		log.Info("fetching metadata for " + input)
		metadata, err := orchestrator.Submit(context.Background(), input)
		return fetchedMsg{metadata: metadata, err: err}
	}
}

// download builds the link for req and hands it to the opener without waiting on the session.
// The outcome comes back as a notification.
func (b *statefulBubble) download(req link.Request) tea.Cmd {
	url, err := link.Build(b.base, req)
	if err != nil {
		log.Error(err)
		return ui.Notify(icon.Get(icon.Fail) + " " + err.Error())
	}

	open := b.open
	return func() tea.Msg {
		log.Infof("opening %s", url)
		if err := open(url); err != nil {
			log.Error(err)
			return ui.NotificationMsg(icon.Get(icon.Fail) + " Unable to open the download link")
		}

		return ui.NotificationMsg(icon.Get(icon.Download) + " Download started")
	}
}
