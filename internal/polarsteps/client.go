// Package polarsteps provides a thin authenticated client for the Polarsteps
// API. The API is undocumented; authentication is a remember-token cookie
// lifted from a browser session. The client performs no retries and keeps no
// state beyond the credential and base URL it was constructed with.
package polarsteps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the production Polarsteps API endpoint.
const DefaultBaseURL = "https://api.polarsteps.com/api"

const defaultTimeout = 30 * time.Second

// Sentinel errors distinguishing upstream outcomes. Callers classify with
// errors.Is; anything else coming out of the client is a transport or
// decoding failure.
var (
	// ErrNotFound indicates the requested user or trip does not exist.
	ErrNotFound = errors.New("polarsteps: resource not found")

	// ErrUnauthorized indicates the remember token was rejected.
	ErrUnauthorized = errors.New("polarsteps: authentication rejected")
)

// Client is the narrow interface the tool layer depends on, one method per
// upstream operation used. It exists so tests can substitute a double.
type Client interface {
	// UserByUsername fetches a user record, including embedded trips and
	// the social graph, by Polarsteps username.
	UserByUsername(ctx context.Context, username string) (*User, error)

	// TripByID fetches a full trip record, including steps, by trip ID.
	TripByID(ctx context.Context, tripID string) (*Trip, error)
}

// Options configures an HTTPClient.
type Options struct {
	// RememberToken is the session credential, obtained out-of-band from a
	// logged-in Polarsteps browser session.
	RememberToken string

	// BaseURL overrides the API endpoint. Empty means DefaultBaseURL.
	BaseURL string

	// Timeout bounds each request. Zero means a 30 second default.
	Timeout time.Duration
}

// HTTPClient implements Client against the live Polarsteps API.
type HTTPClient struct {
	token   string
	baseURL string
	http    *http.Client
}

// NewHTTPClient creates an HTTPClient from the given options.
func NewHTTPClient(opts Options) (*HTTPClient, error) {
	if opts.RememberToken == "" {
		return nil, errors.New("polarsteps: remember token is required")
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &HTTPClient{
		token:   opts.RememberToken,
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}, nil
}

// UserByUsername implements Client.
func (c *HTTPClient) UserByUsername(ctx context.Context, username string) (*User, error) {
	var user User
	endpoint := "/users/byusername/" + url.PathEscape(username)
	if err := c.get(ctx, endpoint, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// TripByID implements Client.
func (c *HTTPClient) TripByID(ctx context.Context, tripID string) (*Trip, error) {
	var trip Trip
	endpoint := "/trips/" + url.PathEscape(tripID)
	if err := c.get(ctx, endpoint, &trip); err != nil {
		return nil, err
	}
	return &trip, nil
}

// get performs an authenticated GET and decodes the JSON body into out.
func (c *HTTPClient) get(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("polarsteps: build request: %w", err)
	}

	req.AddCookie(&http.Cookie{Name: "remember_token", Value: c.token})
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("polarsteps: request %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w (%s)", ErrNotFound, endpoint)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w (status %d)", ErrUnauthorized, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return fmt.Errorf("polarsteps: unexpected status %d from %s", resp.StatusCode, endpoint)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("polarsteps: decode response from %s: %w", endpoint, err)
	}
	return nil
}
