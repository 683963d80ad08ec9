// Package irail provides a small client for the iRail liveboard REST API
package irail

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	perr "liveboard/internal/platform/errors"
	"liveboard/internal/platform/logger"
)

const (
	baseURLDefault = "https://api.irail.be"
	defaultTimeout = 10 * time.Second
	defaultUA      = "liveboard-collector"

	// DefaultStation is used whenever a caller passes an empty station
	DefaultStation = "Brussel-Zuid"
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// Client is a minimal iRail REST client.
// The upstream is unauthenticated and rate limits generously for this call
// volume, so there is no retry machinery here; a failed fetch surfaces to the
// caller and the next trigger tries again
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
	now  func() time.Time
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("irail"),
		now:  time.Now,
	}
}

// Liveboard fetches the current departure board for a station.
// An empty station falls back to DefaultStation
func (c *Client) Liveboard(ctx context.Context, station string) (Payload, error) {
	if station == "" {
		station = DefaultStation
	}

	q := url.Values{}
	q.Set("station", station)
	q.Set("format", "json")
	u := c.opts.BaseURL + "/liveboard/?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Payload{}, perr.Wrapf(err, perr.ErrorCodeUnknown, "irail new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")

	start := c.now()
	resp, err := c.http.Do(req)
	lat := c.now().Sub(start)
	if err != nil {
		return Payload{}, perr.Wrapf(err, perr.ErrorCodeUnavailable, "irail liveboard fetch failed")
	}
	defer func() { _ = drainAndClose(resp.Body) }()

	c.log.Debug().
		Str("station", station).
		Int("status", resp.StatusCode).
		Dur("latency", lat).
		Msg("irail http response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// read a small tail for diagnostics then return
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return Payload{}, perr.Newf(
			perr.ErrorCodeUnavailable,
			"irail unexpected status %d body %s", resp.StatusCode, string(body),
		)
	}

	var out Payload
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Payload{}, perr.Wrapf(err, perr.ErrorCodeUnavailable, "irail malformed payload")
	}
	return out, nil
}

// drainAndClose discards the remainder of a body so the connection can be reused
func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 1<<20))
	return rc.Close()
}
