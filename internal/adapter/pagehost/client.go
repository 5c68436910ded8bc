// Package pagehost talks to the external content host that renders event
// pages. The core only needs page creation and deletion; deletion is a
// best-effort cleanup step for draft removal.
package pagehost

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

// Client creates and deletes event pages over HTTP.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        *slog.Logger
}

// New creates a Client for the given host.
func New(baseURL, token string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "pagehost"),
	}
}

type createRequest struct {
	Title    string  `json:"title"`
	ParentID *string `json:"parent_id,omitempty"`
}

type createResponse struct {
	ID string `json:"id"`
}

// CreatePage creates a page under the given parent and returns its id.
func (c *Client) CreatePage(ctx context.Context, title string, parentID *string) (string, error) {
	payload, err := json.Marshal(createRequest{Title: title, ParentID: parentID})
	if err != nil {
		return "", fmt.Errorf("pagehost: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/pages", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("pagehost: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("pagehost: create page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("pagehost: create page: status %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}

	var out createResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("pagehost: decode response: %w", err)
	}

	c.log.DebugContext(ctx, "page created", slog.String("page_id", out.ID))
	return out.ID, nil
}

// DeletePage removes a page. A 404 is treated as success: the page being
// gone is the desired end state.
func (c *Client) DeletePage(ctx context.Context, pageID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete,
		c.baseURL+"/pages/"+url.PathEscape(pageID), nil)
	if err != nil {
		return fmt.Errorf("pagehost: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("pagehost: delete page %s: %w", pageID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("pagehost: delete page %s: status %d", pageID, resp.StatusCode)
	}
	return nil
}
