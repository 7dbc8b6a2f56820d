// Package mini implements a lightweight, line-oriented interface for fetching and downloading videos.
package mini

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
	"github.com/tikload-cli/tikload/format"
	"github.com/tikload-cli/tikload/key"
	"github.com/tikload-cli/tikload/video"
)

type state int

const (
	inputState state = iota + 1
	formatSelectState
	errorState
	quitState
)

func (m *mini) handleInputState() error {
	title(m.out, "Paste a video link (q to quit)")

	in, err := getInput(viper.GetString(key.TUIPromptString))
	if err != nil {
		return err
	}

	if quitInput(in) {
		m.setState(quitState)
		return nil
	}

	m.submit(in)
	return nil
}

// choices lists the download entries offered for metadata, videos first.
func choices(metadata *video.Metadata) ([]format.Entry, error) {
	videos, err := format.Videos(metadata)
	if err != nil && !errors.Is(err, format.ErrNoFormats) {
		return nil, err
	}

	if !viper.GetBool(key.DownloadAudioEnabled) {
		return videos, err
	}

	return append(videos, format.Audios(metadata)...), err
}

func (m *mini) handleFormatSelectState() error {
	metadata := m.machine.State().Metadata

	entries, err := choices(metadata)
	if errors.Is(err, format.ErrNoFormats) {
		fail(m.out, format.EmptyMessage)
	}

	title(m.out, "Select a format to download")
	b, entry, err := menu(entries, newLink, quit)
	if err != nil {
		return err
	}

	switch b {
	case quit:
		m.setState(quitState)
		return nil
	case newLink:
		m.setState(inputState)
		return nil
	}

	url, err := m.machine.Download(format.Request(metadata, entry))
	if err != nil {
		// already reported as a notice
		return nil
	}

	success(m.out, "Download started: "+url)
	return nil
}

func (m *mini) handleErrorState() error {
	b, _, err := menu([]format.Entry{}, retry, newLink, quit)
	if err != nil {
		return err
	}

	switch b {
	case retry:
		m.submit(m.input)
	case newLink:
		m.setState(inputState)
	case quit:
		m.setState(quitState)
	}

	return nil
}

func quitInput(s string) bool {
	s = strings.TrimSpace(s)
	return s == "q" || s == "quit"
}
