// Package infer talks to an external column-inference service. Its answers
// are advisory: callers revalidate the returned mapping against the real
// header list and fall back to the deterministic resolver on any failure, so
// a slow or broken service never blocks point resolution.
package infer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"tabmap/internal/geom"
	"tabmap/internal/table"
)

// sampleSize caps how many rows are shipped with an inference request.
const sampleSize = 5

// PlaceholderSummary is shown when the summary call fails or is disabled.
const PlaceholderSummary = "no summary available"

type Client struct {
	endpoint string
	http     *http.Client
}

// New returns a client for endpoint, or nil when endpoint is empty
// (inference disabled). A nil *Client is safe to call.
func New(endpoint string, timeout time.Duration) *Client {
	if endpoint == "" {
		return nil
	}
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
	}
}

type request struct {
	Headers []string    `json:"headers"`
	Rows    []table.Row `json:"rows"`
}

type response struct {
	LatColumn string `json:"lat_column"`
	LngColumn string `json:"lng_column"`
	Summary   string `json:"summary"`
}

// GuessColumns asks the service which columns hold the coordinates. The
// result is a raw hint; it has not been checked against the headers.
func (c *Client) GuessColumns(ctx context.Context, d *table.Dataset) (*geom.ColumnMapping, error) {
	if c == nil {
		return nil, nil
	}
	resp, err := c.call(ctx, d)
	if err != nil {
		return nil, err
	}
	if resp.LatColumn == "" && resp.LngColumn == "" {
		return nil, nil
	}
	return &geom.ColumnMapping{LatColumn: resp.LatColumn, LngColumn: resp.LngColumn}, nil
}

// Summarize asks for a one-line description of the dataset. Failures return
// the static placeholder rather than an error so the shell can always show
// something.
func (c *Client) Summarize(ctx context.Context, d *table.Dataset) string {
	if c == nil {
		return PlaceholderSummary
	}
	resp, err := c.call(ctx, d)
	if err != nil || resp.Summary == "" {
		return PlaceholderSummary
	}
	return resp.Summary
}

func (c *Client) call(ctx context.Context, d *table.Dataset) (*response, error) {
	rows := d.Rows
	if len(rows) > sampleSize {
		rows = rows[:sampleSize]
	}
	body, err := json.Marshal(request{Headers: d.Headers, Rows: rows})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("infer: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("infer: status %s", res.Status)
	}
	var out response
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("infer: decode: %w", err)
	}
	return &out, nil
}
