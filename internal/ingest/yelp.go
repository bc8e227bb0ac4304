// internal/ingest/yelp.go
package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"dining-concierge/internal/common/errors"
	"dining-concierge/internal/common/httpx"
)

// YelpClient pages through the business directory search API.
type YelpClient struct {
	http    *httpx.Client
	baseURL string
	apiKey  string
}

func NewYelpClient(client *httpx.Client, baseURL, apiKey string) *YelpClient {
	return &YelpClient{
		http:    client,
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// Search fetches one page of businesses for a location/term pair.
func (c *YelpClient) Search(ctx context.Context, location, term string, offset, limit int) ([]Business, error) {
	req, err := http.NewRequest(http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build directory request: %w", err)
	}

	q := req.URL.Query()
	q.Set("location", location)
	q.Set("term", term)
	q.Set("offset", strconv.Itoa(offset))
	q.Set("limit", strconv.Itoa(limit))
	req.URL.RawQuery = q.Encode()

	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	res, err := c.http.DoWithContext(ctx, req)
	if err != nil {
		return nil, errors.NewDirectoryQueryFailedError(location, term, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, errors.NewDirectoryQueryFailedError(location, term, fmt.Errorf("directory returned %s", res.Status))
	}

	var parsed searchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, errors.NewDirectoryQueryFailedError(location, term, fmt.Errorf("failed to decode response: %w", err))
	}

	return parsed.Businesses, nil
}
