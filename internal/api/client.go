// Package api is the HTTP client for the local FastLogin service.
//
// The service treats metrics as soft state: a failed or malformed fetch is
// reported as an error and the caller keeps showing the last good data.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/easilogin/easidesk/internal/errors"
)

// DefaultTimeout bounds each request. The original client had no explicit
// timeout and could hang a cycle indefinitely; here it is first-class.
const DefaultTimeout = 4 * time.Second

// Client talks to one FastLogin service instance.
type Client struct {
	base string
	http *http.Client
}

// NewClient creates a client for the service at base (e.g.
// "http://127.0.0.1:24300"). A zero timeout uses DefaultTimeout.
func NewClient(base string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: timeout},
	}
}

// Base returns the configured base URL.
func (c *Client) Base() string {
	return c.base
}

// FetchSnapshot retrieves and normalizes one metrics snapshot.
// Transport failures, non-200 statuses, and malformed bodies all return an
// error; callers treat them uniformly as a discarded cycle.
func (c *Client) FetchSnapshot(ctx context.Context) (Snapshot, error) {
	var env metricsEnvelope
	if err := c.getJSON(ctx, "/metrics", &env); err != nil {
		return Snapshot{}, err
	}
	return env.snapshot(), nil
}

// ListAccounts retrieves the saved accounts list.
func (c *Client) ListAccounts(ctx context.Context) ([]Account, error) {
	var env accountsEnvelope
	if err := c.getJSON(ctx, "/getData/SSOLOGIN", &env); err != nil {
		return nil, err
	}

	accounts := make([]Account, 0, len(env.Data))
	for _, a := range env.Data {
		accounts = append(accounts, Account{
			UserID:   a.UserID,
			Nickname: a.Nickname,
			RealName: a.RealName,
			PhotoURL: a.PhotoURL,
		})
	}
	return accounts, nil
}

// getJSON issues a GET and decodes the body into out.
func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrAPI,
			"Invalid request URL: "+c.base+path,
			"Check the api_base setting in your config.")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "Cannot reach "+c.base)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.New(errors.ErrAPI,
			fmt.Sprintf("GET %s returned HTTP %d", path, resp.StatusCode),
			"Check that the FastLogin service is healthy.")
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.WrapWithCode(err, errors.ErrAPI,
			"Malformed response from "+path, "")
	}

	return nil
}
