package session

import (
	"context"
	"errors"
	"sync"

	"github.com/tikload-cli/tikload/api"
	"github.com/tikload-cli/tikload/link"
	"github.com/tikload-cli/tikload/log"
)

const (
	fallbackMessage = api.FallbackMessage
	invalidMessage  = api.InvalidMessage
)

// ErrNotReady is returned by Download before anything has been fetched.
var ErrNotReady = errors.New("nothing to download yet")

// Renderer receives every transition and out-of-band notices.
// Notice may be called from another goroutine.
type Renderer interface {
	Render(State)
	Notice(message string)
}

// Opener hands a download URL to whatever performs the download.
type Opener func(url string) error

// Machine drives Reduce synchronously for line-oriented front-ends.
type Machine struct {
	mu           sync.Mutex
	state        State
	renderer     Renderer
	orchestrator *api.Orchestrator
	open         Opener
	base         string
	opening      sync.WaitGroup
}

// NewMachine returns a machine in the Idle state.
// Downloads are built against base and handed to open.
func NewMachine(renderer Renderer, fetcher api.Fetcher, open Opener, base string) *Machine {
	return &Machine{
		state:        Idle(),
		renderer:     renderer,
		orchestrator: api.NewOrchestrator(fetcher),
		open:         open,
		base:         base,
	}
}

// State returns the current state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Machine) apply(e Event) (State, Effect) {
	m.mu.Lock()
	previous := m.state
	next, effect := Reduce(previous, e)
	m.state = next
	m.mu.Unlock()

	if next != previous {
		log.Debugf("session: %s -> %s", previous.Kind, next.Kind)
		m.renderer.Render(next)
	}

	return next, effect
}

// Submit fetches input and returns the state it settles in.
// Blank input and submissions while loading leave the state unchanged.
func (m *Machine) Submit(ctx context.Context, input string) State {
	state, effect := m.apply(Submit{Input: input})

	fetch, ok := effect.(Fetch)
	if !ok {
		return state
	}

	metadata, err := m.orchestrator.Submit(ctx, fetch.Input)
	if err != nil {
		state, _ = m.apply(Rejected{Message: api.Message(err)})
		return state
	}

	state, _ = m.apply(Resolved{Metadata: metadata})
	return state
}

// Download builds the link for req and opens it in the background.
// The state never changes. Failures are reported to the renderer as notices.
func (m *Machine) Download(req link.Request) (string, error) {
	_, effect := m.apply(Download{Request: req})

	open, ok := effect.(Open)
	if !ok {
		return "", ErrNotReady
	}

	url, err := link.Build(m.base, open.Request)
	if err != nil {
		log.Error(err)
		m.renderer.Notice(err.Error())
		return "", err
	}

	m.opening.Add(1)
	go func() {
		defer m.opening.Done()
		log.Infof("Opening %s", url)
		if err := m.open(url); err != nil {
			log.Error(err)
			m.renderer.Notice("Unable to open the download link: " + err.Error())
		}
	}()

	return url, nil
}

// Wait blocks until every started download has been handed to the opener.
func (m *Machine) Wait() {
	m.opening.Wait()
}
