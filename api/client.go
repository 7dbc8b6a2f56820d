// Package api talks to the download service and guards metadata submissions.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/tikload-cli/tikload/constant"
	"github.com/tikload-cli/tikload/log"
	"github.com/tikload-cli/tikload/network"
	"github.com/tikload-cli/tikload/video"
)

// errorBodyLimit caps how much of an error response is read.
const errorBodyLimit = 64 << 10

// Fetcher resolves a short-video link into metadata.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (*video.Metadata, error)
}

// Client is a Fetcher backed by the download service.
type Client struct {
	base      string
	http      *http.Client
	userAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the shared network client.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		if c != nil {
			client.http = c
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(client *Client) {
		if ua != "" {
			client.userAgent = ua
		}
	}
}

// New returns a client for the API rooted at base.
func New(base string, opts ...Option) *Client {
	c := &Client{
		base:      strings.TrimRight(strings.TrimSpace(base), "/"),
		http:      network.Client,
		userAgent: constant.UserAgent,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Base returns the API base URL without a trailing slash.
func (c *Client) Base() string {
	return c.base
}

// Fetch issues a single metadata request for rawURL.
// Every returned error is a *Failure.
func (c *Client) Fetch(ctx context.Context, rawURL string) (*video.Metadata, error) {
	id := uuid.NewString()
	logger := log.WithFields(log.Fields{"request_id": id, "url": rawURL})

	endpoint := c.base + constant.MetadataPath + "?url=" + url.QueryEscape(rawURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, http.NoBody)
	if err != nil {
		logger.Error(err)
		return nil, transportFailure(err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", id)

	logger.Info("Requesting metadata")
	resp, err := c.http.Do(req)
	if err != nil {
		logger.WithField("kind", TransportFailure).Error(err)
		return nil, transportFailure(err)
	}
	defer resp.Body.Close()

	logger = logger.WithField("status", resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		failure := &Failure{
			Kind:    RequestFailed,
			Message: detail(resp.Body),
			Status:  resp.StatusCode,
			Err:     fmt.Errorf("unexpected status code %d", resp.StatusCode),
		}
		logger.WithField("kind", failure.Kind).Warn(failure.Message)
		return nil, failure
	}

	metadata, err := video.Decode(resp.Body)
	if err != nil {
		failure := transportFailure(err)
		if errors.Is(err, video.ErrInvalidMetadata) {
			failure = &Failure{Kind: InvalidMetadata, Message: InvalidMessage, Status: resp.StatusCode, Err: err}
		}
		failure.Status = resp.StatusCode
		logger.WithField("kind", failure.Kind).Error(err)
		return nil, failure
	}

	logger.Infof("Got metadata for %q with %d formats", metadata.Title, len(metadata.Formats))
	return metadata, nil
}

// detail extracts the backend's error message, falling back to FallbackMessage.
func detail(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, errorBodyLimit))
	if err != nil {
		return FallbackMessage
	}

	var payload struct {
		Detail any `json:"detail"`
	}

	if err := json.Unmarshal(data, &payload); err != nil {
		return FallbackMessage
	}

	if message, ok := payload.Detail.(string); ok && strings.TrimSpace(message) != "" {
		return message
	}

	return FallbackMessage
}
