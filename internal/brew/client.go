package brew

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrFetch indicates that a single inventory or metadata call failed or
// returned unparsable output. Callers degrade to an empty result for that
// call rather than aborting the session.
var ErrFetch = errors.New("brew inventory fetch failed")

// Client is the inventory client. Every call hits the external tool
// fresh; nothing is cached between calls.
type Client struct {
	exec Executor
}

// NewClient creates a new inventory client on top of an Executor.
func NewClient(exec Executor) *Client {
	return &Client{exec: exec}
}

// Check verifies that the brew binary is available in PATH.
func (c *Client) Check() error {
	return c.exec.Check()
}

// FetchInstalled retrieves the structured list of installed packages.
// Returns ErrFetch-wrapped errors when the CLI fails or emits unparsable
// JSON; callers treat that as an empty inventory.
func (c *Client) FetchInstalled(ctx context.Context) ([]Entry, error) {
	raw, err := c.exec.Capture(ctx, "info", "--json=v2", "--installed")
	if err != nil {
		return nil, fmt.Errorf("%w: listing installed packages: %v", ErrFetch, err)
	}

	doc, err := ParseInfoDocument([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: parsing installed packages JSON: %v", ErrFetch, err)
	}

	return doc.Entries(), nil
}

// FetchPreReleaseNames runs a name search for the given pre-release
// pattern and returns the matching package names. Section headers and
// blank lines in the search output are dropped.
func (c *Client) FetchPreReleaseNames(ctx context.Context, pattern string) ([]string, error) {
	raw, err := c.exec.Capture(ctx, "search", pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: searching pre-release names: %v", ErrFetch, err)
	}

	var names []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.Contains(line, "==>") {
			continue
		}
		names = append(names, line)
	}
	return names, nil
}

// FetchMetadata batches one info lookup for all given names and returns
// a name-to-version map. The map is empty, never nil, on failure.
func (c *Client) FetchMetadata(ctx context.Context, names []string) (map[string]string, error) {
	if len(names) == 0 {
		return map[string]string{}, nil
	}

	args := append([]string{"info", "--json=v2"}, names...)
	raw, err := c.exec.Capture(ctx, args...)
	if err != nil {
		return map[string]string{}, fmt.Errorf("%w: fetching metadata: %v", ErrFetch, err)
	}

	doc, err := ParseInfoDocument([]byte(raw))
	if err != nil {
		return map[string]string{}, fmt.Errorf("%w: parsing metadata JSON: %v", ErrFetch, err)
	}

	return doc.Versions(), nil
}

// FetchDescriptions batches one info lookup and returns a
// name-to-description map. The map is empty, never nil, on failure.
func (c *Client) FetchDescriptions(ctx context.Context, names []string) (map[string]string, error) {
	if len(names) == 0 {
		return map[string]string{}, nil
	}

	args := append([]string{"info", "--json=v2"}, names...)
	raw, err := c.exec.Capture(ctx, args...)
	if err != nil {
		return map[string]string{}, fmt.Errorf("%w: fetching descriptions: %v", ErrFetch, err)
	}

	doc, err := ParseInfoDocument([]byte(raw))
	if err != nil {
		return map[string]string{}, fmt.Errorf("%w: parsing descriptions JSON: %v", ErrFetch, err)
	}

	return doc.Descriptions(), nil
}

// Search runs a free-text name search and returns cleaned result tokens.
// Multi-column search output is split on whitespace; section markers are
// removed.
func (c *Client) Search(ctx context.Context, query string) ([]string, error) {
	raw, err := c.exec.Capture(ctx, "search", query)
	if err != nil {
		return nil, fmt.Errorf("%w: searching for %q: %v", ErrFetch, query, err)
	}

	var results []string
	for _, token := range strings.Fields(raw) {
		switch token {
		case "==>", "Formulae", "Casks":
			continue
		}
		results = append(results, token)
	}
	return results, nil
}

// Info fetches structured info for a single package.
func (c *Client) Info(ctx context.Context, name string) (*InfoDocument, error) {
	raw, err := c.exec.Capture(ctx, "info", "--json=v2", name)
	if err != nil {
		return nil, fmt.Errorf("%w: info for %q: %v", ErrFetch, name, err)
	}
	doc, err := ParseInfoDocument([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: parsing info JSON for %q: %v", ErrFetch, name, err)
	}
	return doc, nil
}

// InfoText fetches the free-text info output, used as a fallback when the
// structured lookup fails.
func (c *Client) InfoText(ctx context.Context, name string) (string, error) {
	return c.exec.Capture(ctx, "info", name)
}
