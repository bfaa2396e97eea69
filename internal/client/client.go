package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Config carries everything the stores need to reach the backend. The two
// base URLs exist because the original deployment split traffic between the
// application API and a raw document server; both are injected here instead
// of being hardcoded per call site.
type Config struct {
	APIBaseURL   string
	DataBaseURL  string
	ProbeTimeout time.Duration
	SessionFile  string
}

// Client is the shared HTTP plumbing under every store. It holds no
// entity state; stores compose it.
type Client struct {
	cfg  Config
	http *http.Client
}

func New(cfg Config) *Client {
	if cfg.ProbeTimeout <= 0 {
		cfg.ProbeTimeout = 2 * time.Second
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{},
	}
}

// apiURL joins a path onto the application API base.
func (c *Client) apiURL(path string) string {
	return c.cfg.APIBaseURL + path
}

// dataURL joins a path onto the raw document-server base.
func (c *Client) dataURL(path string) string {
	return c.cfg.DataBaseURL + path
}

// getJSON fetches url and decodes the body into out.
func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errorFrom(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// sendJSON issues a POST or PUT with a JSON body. out may be nil when the
// caller does not care about the echoed entity.
func (c *Client) sendJSON(ctx context.Context, method, url string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errorFrom(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// deleteJSON issues a DELETE and checks for a 2xx status.
func (c *Client) deleteJSON(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errorFrom(resp)
	}
	return nil
}

// errorFrom turns a non-2xx response into an error, surfacing the backend's
// {"error": "..."} string when one is present.
func errorFrom(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		return fmt.Errorf("%s", body.Error)
	}
	return fmt.Errorf("request failed with status %d", resp.StatusCode)
}
