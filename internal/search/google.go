package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const customSearchURL = "https://www.googleapis.com/customsearch/v1"

// GoogleClient implements Searcher using the Google Custom Search JSON API.
type GoogleClient struct {
	apiKey     string
	engineID   string
	baseURL    string
	httpClient *http.Client
}

// NewGoogleClient constructs a Custom Search client. A non-positive
// timeout falls back to 15 seconds.
func NewGoogleClient(apiKey, engineID string, timeout time.Duration) (*GoogleClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("SEARCH_API_KEY is required")
	}
	if strings.TrimSpace(engineID) == "" {
		return nil, fmt.Errorf("SEARCH_ENGINE_ID is required")
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &GoogleClient{
		apiKey:   apiKey,
		engineID: engineID,
		baseURL:  customSearchURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type searchResponse struct {
	Items []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"items"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Search runs one query and returns the ranked hits.
func (c *GoogleClient) Search(ctx context.Context, query string) ([]Result, error) {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("cx", c.engineID)
	params.Set("q", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("custom search request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("custom search response parse: %w", err)
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("custom search error: %d %s", parsed.Error.Code, parsed.Error.Message)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("custom search http status %d", resp.StatusCode)
	}

	results := make([]Result, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		results = append(results, Result{
			Title:   item.Title,
			Link:    item.Link,
			Snippet: item.Snippet,
		})
	}
	return results, nil
}

var _ Searcher = (*GoogleClient)(nil)
