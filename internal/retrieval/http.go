package retrieval

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPRetriever queries an external knowledge-base service over HTTP.
// The service is treated as opaque: one query string in, one snippet out.
type HTTPRetriever struct {
	url    string
	client *http.Client
}

var _ Retriever = (*HTTPRetriever)(nil)

// NewHTTPRetriever creates a retriever that POSTs queries to the given URL.
func NewHTTPRetriever(url string) *HTTPRetriever {
	return &HTTPRetriever{
		url: url,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type retrieveRequest struct {
	Query string `json:"query"`
}

type retrieveResponse struct {
	Snippet string `json:"snippet"`
}

// Retrieve returns the snippet for a query, or an error if the service is
// unreachable. Callers treat failures as "no context", never as fatal.
func (r *HTTPRetriever) Retrieve(ctx context.Context, query string) (string, error) {
	body, err := json.Marshal(retrieveRequest{Query: query})
	if err != nil {
		return "", fmt.Errorf("failed to marshal query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("retrieval request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("retrieval service returned status %d", resp.StatusCode)
	}

	var out retrieveResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode retrieval response: %w", err)
	}

	return out.Snippet, nil
}
