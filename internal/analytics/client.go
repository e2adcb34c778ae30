package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// TopPackage is one ranked entry from the install-count feed.
type TopPackage struct {
	Name  string
	Count int
}

// feedDocument mirrors the relevant parts of the analytics JSON.
type feedDocument struct {
	Items []feedItem `json:"items"`
}

// feedItem counts come back as formatted strings ("12,345").
type feedItem struct {
	Formula string `json:"formula"`
	Cask    string `json:"cask"`
	Count   string `json:"count"`
}

// Client fetches the ranked install-count list.
type Client struct {
	url  string
	http *retryableHTTPClient
}

// NewClient creates a feed client for the given analytics URL.
func NewClient(url string) *Client {
	return &Client{
		url:  url,
		http: newRetryableHTTPClient(DefaultRetryConfig()),
	}
}

// TopInstalls returns up to limit entries, ranked by install count
// descending as published by the feed.
func (c *Client) TopInstalls(ctx context.Context, limit int) ([]TopPackage, error) {
	resp, err := c.http.getWithContext(ctx, c.url)
	if err != nil {
		return nil, fmt.Errorf("fetching analytics feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("analytics feed returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading analytics feed: %w", err)
	}

	var doc feedDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("parsing analytics feed: %w", err)
	}

	items := doc.Items
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	top := make([]TopPackage, 0, len(items))
	for _, item := range items {
		name := item.Formula
		if name == "" {
			name = item.Cask
		}
		if name == "" {
			continue
		}
		top = append(top, TopPackage{Name: name, Count: parseCount(item.Count)})
	}

	return top, nil
}

// parseCount parses a feed count like "12,345" into an int.
func parseCount(s string) int {
	n, err := strconv.Atoi(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return 0
	}
	return n
}
