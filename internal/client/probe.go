package client

import (
	"context"
	"net/http"
	"strings"
)

// Availability probing. Each store probes before each operation; there is no
// shared result cache, so a store's offline flag reflects its own most
// recent probe only.

// probeHealth reports whether the application API answers HEAD
// /health-check within the probe timeout. A response without a JSON content
// type counts as unavailable: a captive portal or a stray static server on
// the same port would otherwise pass.
func (c *Client) probeHealth(ctx context.Context) bool {
	resp, ok := c.head(ctx, c.apiURL("/health-check"))
	if !ok {
		return false
	}
	return strings.Contains(resp.Header.Get("Content-Type"), "application/json")
}

// probeCollection reports whether the document server answers HEAD on the
// named collection within the probe timeout.
func (c *Client) probeCollection(ctx context.Context, collection string) bool {
	_, ok := c.head(ctx, c.dataURL("/"+collection))
	return ok
}

func (c *Client) head(ctx context.Context, url string) (*http.Response, bool) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.ProbeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return nil, false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, false
	}
	resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, false
	}
	return resp, true
}
