// Package mini implements a lightweight, line-oriented interface for fetching and downloading videos.
package mini

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/tikload-cli/tikload/api"
	"github.com/tikload-cli/tikload/session"
	"github.com/tikload-cli/tikload/util"
)

var (
	truncateAt = 100
)

type Options struct {
	// URL is submitted before the first prompt when set.
	URL     string
	Base    string
	Fetcher api.Fetcher
	Open    session.Opener
}

type mini struct {
	width, height int

	state   state
	machine *session.Machine
	out     io.Writer

	// input is the last submitted link, kept for retries.
	input string
	erase func()
}

func newMini(options *Options, out io.Writer) *mini {
	m := &mini{
		out:   out,
		erase: func() {},
	}
	m.machine = session.NewMachine(m, options.Fetcher, options.Open, options.Base)
	return m
}

func (m *mini) setState(s state) {
	m.state = s
}

// Render implements session.Renderer.
func (m *mini) Render(s session.State) {
	m.erase()
	m.erase = func() {}

	switch s.Kind {
	case session.KindLoading:
		m.erase = progress(m.out, "Fetching video details..")
	case session.KindResult:
		header(m.out, s.Metadata)
	case session.KindError:
		fail(m.out, s.Message)
	}
}

// Notice implements session.Renderer.
func (m *mini) Notice(message string) {
	fail(m.out, message)
}

func Run(options *Options) error {
	m := newMini(options, os.Stdout)
	m.setState(inputState)

	if w, h, err := util.TerminalSize(); err == nil {
		m.width, m.height = w, h
		truncateAt = w
	}

	if options.URL != "" {
		m.submit(options.URL)
	}

	defer m.machine.Wait()

	for {
		if m.state == quitState {
			return nil
		}

		if err := m.handleState(); err != nil {
			return err
		}
	}
}

// submit runs a submission to completion and moves to the matching prompt.
func (m *mini) submit(input string) {
	m.input = input

	switch m.machine.Submit(context.Background(), input).Kind {
	case session.KindResult:
		m.setState(formatSelectState)
	case session.KindError:
		m.setState(errorState)
	default:
		m.setState(inputState)
	}
}

func (m *mini) handleState() error {
	switch m.state {
	case inputState:
		return m.handleInputState()
	case formatSelectState:
		return m.handleFormatSelectState()
	case errorState:
		return m.handleErrorState()
	}

	return fmt.Errorf("unknown state %d", m.state)
}
