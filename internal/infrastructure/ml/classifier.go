package ml

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"NewsMoodBot/internal/config"
	"NewsMoodBot/internal/ports"
)

// Client talks to an external zero-shot classification service over HTTP.
// The service receives a text plus candidate labels and answers with the
// labels reordered by confidence.
type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

var _ ports.Classifier = (*Client)(nil)

// NewClient creates a reusable HTTP client from ML configuration.
func NewClient(cfg config.MLConfig) *Client {
	return &Client{
		endpoint: cfg.InferenceURL,
		apiKey:   cfg.APIKey,
		http:     &http.Client{Timeout: cfg.Timeout()},
	}
}

// Classify sends the text with the candidate label set and returns the
// labels ordered by confidence descending.
func (c *Client) Classify(ctx context.Context, text string, labels []string) ([]string, error) {
	if c.endpoint == "" {
		return nil, fmt.Errorf("classifier endpoint is not configured")
	}

	payload := map[string]any{
		"inputs": text,
		"parameters": map[string]any{
			"candidate_labels": labels,
		},
	}

	var resp struct {
		Labels []string  `json:"labels"`
		Scores []float64 `json:"scores"`
	}

	if err := c.post(ctx, payload, &resp); err != nil {
		return nil, err
	}

	if len(resp.Labels) == 0 {
		return nil, fmt.Errorf("classifier returned no labels")
	}

	return resp.Labels, nil
}

func (c *Client) post(ctx context.Context, payload any, v any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("classifier error %s: %s", resp.Status, strings.TrimSpace(string(detail)))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
