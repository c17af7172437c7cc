package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"unicode/utf8"

	"golang.org/x/time/rate"

	"NewsMoodBot/internal/config"
	"NewsMoodBot/internal/ports"
)

// Client is a rate-limited HTTP page fetcher shared by the day crawler and
// the snippet extractor, so one query cannot hammer the site.
type Client struct {
	http      *http.Client
	limiter   *rate.Limiter
	userAgent string
}

var _ ports.PageFetcher = (*Client)(nil)

// NewClient builds a fetcher from crawler configuration.
func NewClient(cfg config.CrawlerConfig) *Client {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 4
	}

	return &Client{
		http:      &http.Client{Timeout: cfg.Timeout()},
		limiter:   rate.NewLimiter(rate.Limit(rps), 1),
		userAgent: cfg.UserAgent,
	}
}

// Fetch downloads a page and returns its HTML. Timeouts, non-200 statuses
// and non-UTF-8 bodies are all reported as fetch failures.
func (c *Client) Fetch(ctx context.Context, pageURL string) (string, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limit wait: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("request page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("page returned %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	if !utf8.Valid(body) {
		return "", fmt.Errorf("page %s is not valid UTF-8", pageURL)
	}

	return string(body), nil
}
