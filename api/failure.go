package api

import (
	"errors"
)

var (
	// ErrInputEmpty is returned for blank submissions. No request is made and nothing is shown.
	ErrInputEmpty = errors.New("input is empty")
	// ErrBusy is returned while another submission is still in flight.
	ErrBusy = errors.New("a request is already in flight")
)

// User-visible messages.
const (
	FallbackMessage  = "Unable to fetch video details."
	InvalidMessage   = "Received invalid video details."
	TransportMessage = "Unable to reach the download service."
)

// Kind classifies a surfaced failure.
type Kind int

const (
	// RequestFailed is a non-success HTTP status.
	RequestFailed Kind = iota + 1
	// InvalidMetadata is a success response whose payload is not valid metadata.
	InvalidMetadata
	// TransportFailure covers network errors, timeouts and unreadable bodies.
	TransportFailure
)

func (k Kind) String() string {
	switch k {
	case RequestFailed:
		return "request failed"
	case InvalidMetadata:
		return "invalid metadata"
	case TransportFailure:
		return "transport failure"
	default:
		return "unknown"
	}
}

// Failure is the single error type surfaced by the client.
type Failure struct {
	Kind    Kind
	Message string
	// Status is the HTTP status code, 0 when no response was received.
	Status int
	Err    error
}

func (f *Failure) Error() string {
	return f.Message
}

func (f *Failure) Unwrap() error {
	return f.Err
}

func transportFailure(err error) *Failure {
	return &Failure{Kind: TransportFailure, Message: TransportMessage, Err: err}
}

// Message returns the text to show for err.
// Silent errors yield an empty string.
func Message(err error) string {
	if err == nil || errors.Is(err, ErrInputEmpty) || errors.Is(err, ErrBusy) {
		return ""
	}

	var failure *Failure
	if errors.As(err, &failure) {
		return failure.Message
	}

	return TransportMessage
}
