// Package tablestore implements a thin client over a generic REST-style
// table protocol: select with filters, insert, upsert, patch, delete.
// Failed requests carry a decoded Diagnostic so callers (most importantly
// the schema-negotiating writer) can react to the remote error shape.
package tablestore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// Row is a single decoded record. The column set is whatever the remote
// relation actually has, which is not guaranteed to match expectations.
type Row map[string]any

// Client talks to the table store over HTTP.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// New creates a Client for the given base URL and API key.
func New(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "tablestore"),
	}
}

// SelectParams describes a read: an ordered filter list, an optional column
// projection, and optional ordering/limit.
type SelectParams struct {
	Columns    []string
	Filters    []Filter
	OrderBy    string
	Descending bool
	Limit      int
}

// Select returns all rows of the relation matching the params.
func (c *Client) Select(ctx context.Context, relation string, p SelectParams) ([]Row, error) {
	q := encodeFilters(p.Filters)
	if len(p.Columns) > 0 {
		q.Set("select", joinColumns(p.Columns))
	}
	if p.OrderBy != "" {
		dir := "asc"
		if p.Descending {
			dir = "desc"
		}
		q.Set("order", p.OrderBy+"."+dir)
	}
	if p.Limit > 0 {
		q.Set("limit", fmt.Sprintf("%d", p.Limit))
	}

	return c.do(ctx, http.MethodGet, relation, q, nil, nil)
}

// SelectOne returns the first matching row, or domain not-found semantics
// via ErrNoRows when nothing matches.
func (c *Client) SelectOne(ctx context.Context, relation string, p SelectParams) (Row, error) {
	p.Limit = 1
	rows, err := c.Select(ctx, relation, p)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	return rows[0], nil
}

// Insert writes a single row and returns it as stored.
func (c *Client) Insert(ctx context.Context, relation string, row Row) (Row, error) {
	rows, err := c.InsertMany(ctx, relation, []Row{row})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("tablestore: insert into %s returned no rows", relation)
	}
	return rows[0], nil
}

// InsertMany writes multiple rows and returns them as stored.
func (c *Client) InsertMany(ctx context.Context, relation string, rows []Row) ([]Row, error) {
	return c.do(ctx, http.MethodPost, relation, url.Values{}, rows, nil)
}

// Upsert inserts or merges a row on the given conflict-target column and
// returns the stored row.
func (c *Client) Upsert(ctx context.Context, relation string, row Row, conflictColumn string) (Row, error) {
	q := url.Values{}
	q.Set("on_conflict", conflictColumn)
	headers := map[string]string{
		"Prefer": "return=representation,resolution=merge-duplicates",
	}
	rows, err := c.do(ctx, http.MethodPost, relation, q, []Row{row}, headers)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("tablestore: upsert into %s returned no rows", relation)
	}
	return rows[0], nil
}

// Patch updates all rows matching the filters and returns the affected rows.
func (c *Client) Patch(ctx context.Context, relation string, patch Row, filters []Filter) ([]Row, error) {
	return c.do(ctx, http.MethodPatch, relation, encodeFilters(filters), patch, nil)
}

// Delete removes all rows matching the filters and returns them.
func (c *Client) Delete(ctx context.Context, relation string, filters []Filter) ([]Row, error) {
	return c.do(ctx, http.MethodDelete, relation, encodeFilters(filters), nil, nil)
}

// Ping checks reachability of the store endpoint.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL+"/", nil)
	if err != nil {
		return fmt.Errorf("tablestore: create ping request: %w", err)
	}
	c.setAuth(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("tablestore: ping: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("tablestore: ping: status %d", resp.StatusCode)
	}
	return nil
}

// do executes one request against a relation. A non-2xx response is decoded
// into a RequestError carrying the remote diagnostic; a recognizable
// "permission denied for schema" diagnostic becomes a SchemaAccessError.
func (c *Client) do(ctx context.Context, method, relation string, query url.Values, body any, headers map[string]string) ([]Row, error) {
	reqURL := c.baseURL + "/" + url.PathEscape(relation)
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("tablestore: marshal %s body: %w", relation, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return nil, fmt.Errorf("tablestore: create %s request: %w", relation, err)
	}
	c.setAuth(req)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	// Mutations always ask for the written rows back.
	if method != http.MethodGet {
		req.Header.Set("Prefer", "return=representation")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	c.log.DebugContext(ctx, "tablestore request",
		slog.String("method", method),
		slog.String("relation", relation),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tablestore: %s %s: %w", method, relation, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("tablestore: %s %s: read body: %w", method, relation, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.remoteError(ctx, relation, resp.StatusCode, raw)
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	var rows []Row
	if err := json.Unmarshal(raw, &rows); err != nil {
		// Single-object responses are valid for some mutations.
		var one Row
		if err2 := json.Unmarshal(raw, &one); err2 != nil {
			return nil, fmt.Errorf("tablestore: %s %s: decode response: %w", method, relation, err)
		}
		rows = []Row{one}
	}
	return rows, nil
}

func (c *Client) setAuth(req *http.Request) {
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}

func (c *Client) remoteError(ctx context.Context, relation string, status int, raw []byte) error {
	diag := decodeDiagnostic(raw)

	c.log.WarnContext(ctx, "tablestore remote error",
		slog.String("relation", relation),
		slog.Int("status", status),
		slog.String("code", diag.Code),
		slog.String("message", diag.Message),
	)

	if diag.IsSchemaPermission() {
		return &SchemaAccessError{Relation: relation, Diagnostic: diag}
	}

	return &RequestError{Relation: relation, Status: status, Diagnostic: diag}
}

func joinColumns(cols []string) string {
	out := ""
	for i, c := range cols {
		if i > 0 {
			out += ","
		}
		out += c
	}
	return out
}
