package api

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/tikload-cli/tikload/log"
	"github.com/tikload-cli/tikload/video"
)

// Orchestrator admits at most one metadata request at a time.
type Orchestrator struct {
	fetcher  Fetcher
	inFlight atomic.Bool
}

// NewOrchestrator wraps f with input trimming and the in-flight guard.
func NewOrchestrator(f Fetcher) *Orchestrator {
	return &Orchestrator{fetcher: f}
}

// Busy reports whether a submission is in flight.
func (o *Orchestrator) Busy() bool {
	return o.inFlight.Load()
}

// Submit trims raw and fetches its metadata.
// Blank input returns ErrInputEmpty and a concurrent call returns ErrBusy, neither issues a request.
// Any other failure is a *Failure.
func (o *Orchestrator) Submit(ctx context.Context, raw string) (metadata *video.Metadata, err error) {
	input := strings.TrimSpace(raw)
	if input == "" {
		return nil, ErrInputEmpty
	}

	if !o.inFlight.CompareAndSwap(false, true) {
		log.Warnf("Ignoring %q, a request is already in flight", input)
		return nil, ErrBusy
	}
	defer o.inFlight.Store(false)

	defer func() {
		if r := recover(); r != nil {
			log.Errorf("recovered from panic while fetching %q: %v", input, r)
			metadata, err = nil, transportFailure(fmt.Errorf("panic: %v", r))
		}
	}()

	metadata, err = o.fetcher.Fetch(ctx, input)
	if err != nil {
		var failure *Failure
		if !errors.As(err, &failure) {
			err = transportFailure(err)
		}
		return nil, err
	}

	if metadata == nil {
		return nil, &Failure{Kind: InvalidMetadata, Message: InvalidMessage, Err: video.ErrInvalidMetadata}
	}

	return metadata, nil
}
