// Package rapidapi implements the live travel-search adapters against the
// RapidAPI hotel and flight providers. Both adapters degrade gracefully: any
// failure (missing credential, transport error, non-success status, malformed
// or empty payload) yields a "no data" result rather than an error, and the
// caller substitutes fallback data.
package rapidapi

import (
	"net/http"
	"time"

	"github.com/voyagehq/travelmcp/types"
)

const (
	defaultHotelsHost  = "booking-com13.p.rapidapi.com"
	defaultFlightsHost = "sky-scrapper.p.rapidapi.com"

	// maxResults caps how many upstream records are projected before
	// client-side filters run.
	maxResults = 10
)

// Client calls the RapidAPI travel providers.
type Client struct {
	key            string
	hotelsHost     string
	flightsHost    string
	hotelsBaseURL  string
	flightsBaseURL string
	httpClient     *http.Client
	logger         types.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithHotelsBaseURL overrides the hotels endpoint base URL.
func WithHotelsBaseURL(baseURL string) Option {
	return func(c *Client) { c.hotelsBaseURL = baseURL }
}

// WithFlightsBaseURL overrides the flights endpoint base URL.
func WithFlightsBaseURL(baseURL string) Option {
	return func(c *Client) { c.flightsBaseURL = baseURL }
}

// NewClient builds a RapidAPI client. An empty key puts the client in
// permanent fallback mode: every search reports no data. Upstream calls carry
// a bounded timeout so the adapter never blocks indefinitely.
func NewClient(key string, logger types.Logger, opts ...Option) *Client {
	c := &Client{
		key:            key,
		hotelsHost:     defaultHotelsHost,
		flightsHost:    defaultFlightsHost,
		hotelsBaseURL:  "https://" + defaultHotelsHost,
		flightsBaseURL: "https://" + defaultFlightsHost,
		httpClient:     &http.Client{Timeout: 10 * time.Second},
		logger:         logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) setAuthHeaders(req *http.Request, host string) {
	req.Header.Set("X-RapidAPI-Key", c.key)
	req.Header.Set("X-RapidAPI-Host", host)
}
