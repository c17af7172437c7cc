package ports

import (
	"context"
	"time"

	"NewsMoodBot/internal/domain"
)

// PageFetcher retrieves raw HTML for a URL. A network error, non-200
// status, or non-UTF-8 body all count as fetch failures.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// NewsSource produces the deduplicated headline list for a single day.
type NewsSource interface {
	Crawl(ctx context.Context, day time.Time) ([]domain.NewsItem, error)
}

// SnippetSource extracts the first sentence of an article body.
// Failures are recoverable and yield an empty string.
type SnippetSource interface {
	FirstSentence(ctx context.Context, url string) string
}

// Classifier ranks the candidate labels for a text, most confident first.
type Classifier interface {
	Classify(ctx context.Context, text string, labels []string) ([]string, error)
}

// ProgressSink receives human-readable progress updates while tagging
// runs. Emit is best-effort: callers ignore its error beyond logging.
type ProgressSink interface {
	Emit(text string) error
}

// ChartRenderer turns label counts into an image (PNG).
type ChartRenderer interface {
	RenderBarChart(counts map[string]int) ([]byte, error)
}

// Scheduler controls when the daily digest job executes.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
