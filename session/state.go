// Package session holds the front-end state machine shared by the interactive modes.
package session

import (
	"strings"

	"github.com/tikload-cli/tikload/link"
	"github.com/tikload-cli/tikload/video"
)

// Kind names the current state.
type Kind int

const (
	KindIdle Kind = iota
	KindLoading
	KindResult
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindIdle:
		return "idle"
	case KindLoading:
		return "loading"
	case KindResult:
		return "result"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// State is exactly one of Idle, Loading, Result or Error.
// Metadata is set only for Result and Message only for Error.
type State struct {
	Kind Kind
	// Input is the submission being fetched while Loading.
	Input    string
	Metadata *video.Metadata
	Message  string
}

func Idle() State {
	return State{Kind: KindIdle}
}

func Loading(input string) State {
	return State{Kind: KindLoading, Input: input}
}

func Result(m *video.Metadata) State {
	return State{Kind: KindResult, Metadata: m}
}

func Failed(message string) State {
	return State{Kind: KindError, Message: message}
}

// Accepts reports whether a submission would start a fetch.
func (s State) Accepts() bool {
	return s.Kind != KindLoading
}

// Event is something that happened to the session.
type Event interface {
	event()
}

// Submit is a user submission of raw link text.
type Submit struct {
	Input string
}

// Resolved carries metadata for the in-flight submission.
type Resolved struct {
	Metadata *video.Metadata
}

// Rejected carries the message of a failed submission.
type Rejected struct {
	Message string
}

// Download is a user request to download a presented entry.
type Download struct {
	Request link.Request
}

func (Submit) event()   {}
func (Resolved) event() {}
func (Rejected) event() {}
func (Download) event() {}

// Effect is work the caller performs after a transition.
type Effect interface {
	effect()
}

// Fetch asks the caller to resolve Input through the orchestrator.
type Fetch struct {
	Input string
}

// Open asks the caller to build and open the download link for Request.
type Open struct {
	Request link.Request
}

func (Fetch) effect() {}
func (Open) effect()  {}

// Reduce returns the state that follows s after e and the effect to perform, if any.
// It never performs I/O.
func Reduce(s State, e Event) (State, Effect) {
	switch e := e.(type) {
	case Submit:
		input := strings.TrimSpace(e.Input)
		if input == "" || !s.Accepts() {
			return s, nil
		}
		return Loading(input), Fetch{Input: input}

	case Resolved:
		if s.Kind != KindLoading {
			return s, nil
		}
		if e.Metadata == nil {
			return Failed(invalidMessage), nil
		}
		return Result(e.Metadata), nil

	case Rejected:
		if s.Kind != KindLoading {
			return s, nil
		}
		if strings.TrimSpace(e.Message) == "" {
			return Failed(fallbackMessage), nil
		}
		return Failed(e.Message), nil

	case Download:
		if s.Kind != KindResult && s.Kind != KindError {
			return s, nil
		}
		return s, Open{Request: e.Request}
	}

	return s, nil
}
