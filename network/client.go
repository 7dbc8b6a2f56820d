// Package network provides the pre-configured HTTP client used to reach the download service.
package network

import (
	"net/http"
	"time"
)

// Client is the shared HTTP client used when no timeout is configured.
var Client = New(time.Minute)

// New returns a client with the tuned transport and the given overall timeout.
// A zero timeout disables the client-side limit.
func New(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: newTransport(),
	}
}

// newTransport initializes a tuned http.Transport with pool and timeout parameters.
// Metadata extraction can take a while on the backend, so only the dial and idle phases are bounded here.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 10
	t.MaxIdleConnsPerHost = 10
	t.IdleConnTimeout = 30 * time.Second
	t.ExpectContinueTimeout = time.Second
	return t
}
