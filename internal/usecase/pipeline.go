package usecase

import (
	"context"
	"log/slog"
	"time"

	"NewsMoodBot/internal/collector"
	"NewsMoodBot/internal/domain"
	"NewsMoodBot/internal/ports"
	"NewsMoodBot/internal/session"
	"NewsMoodBot/internal/stats"
	"NewsMoodBot/internal/tagger"
)

// PipelineDeps wires all driven adapters into the query pipeline.
type PipelineDeps struct {
	Source    ports.NewsSource
	Collector *collector.Collector
	Snippets  ports.SnippetSource
	Tagger    *tagger.Tagger
	Sessions  *session.Store
	Logger    *slog.Logger
}

// Pipeline implements the news-emotion query workflow: collect headlines,
// extract snippets, tag emotions, store the batch per chat, count labels.
type Pipeline struct {
	source    ports.NewsSource
	collector *collector.Collector
	snippets  ports.SnippetSource
	tagger    *tagger.Tagger
	sessions  *session.Store
	logger    *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		source:    deps.Source,
		collector: deps.Collector,
		snippets:  deps.Snippets,
		tagger:    deps.Tagger,
		sessions:  deps.Sessions,
		logger:    deps.Logger,
	}
}

// Collect gathers the raw news batch for [start, end] inclusive. A single
// day keeps items date-free; a range stamps each item with its source date.
// Failed days degrade to empty results, so the returned batch may be empty
// without error.
func (p *Pipeline) Collect(ctx context.Context, start, end time.Time) []domain.NewsItem {
	start, end = collector.Normalize(start), collector.Normalize(end)
	if start.After(end) {
		start, end = end, start
	}

	if start.Equal(end) {
		items, err := p.source.Crawl(ctx, start)
		if err != nil {
			p.warn("day crawl failed", "day", start.Format("2006-01-02"), "error", err)
			return nil
		}
		return items
	}

	byDay := p.collector.Collect(ctx, start, end)

	var aggregated []domain.NewsItem
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		aggregated = append(aggregated, byDay[d]...)
	}
	return aggregated
}

// Analyze augments each item with its article snippet, runs the tagging
// loop with progress reported through sink, stores the tagged batch for the
// chat, and returns it with the per-label counts.
func (p *Pipeline) Analyze(ctx context.Context, chatID int64, items []domain.NewsItem, sink ports.ProgressSink) ([]domain.NewsItem, map[string]int, error) {
	if len(items) == 0 {
		return nil, stats.CountByLabel(nil), nil
	}

	for i := range items {
		items[i].Snippet = p.snippets.FirstSentence(ctx, items[i].URL)
	}

	items = p.tagger.Tag(ctx, items, sink)
	if err := ctx.Err(); err != nil {
		return items, nil, err
	}

	p.sessions.Put(chatID, items)
	return items, stats.CountByLabel(items), nil
}

// Run executes a complete query cycle for a chat.
func (p *Pipeline) Run(ctx context.Context, chatID int64, start, end time.Time, sink ports.ProgressSink) ([]domain.NewsItem, map[string]int, error) {
	items := p.Collect(ctx, start, end)
	return p.Analyze(ctx, chatID, items, sink)
}

// Filter returns the chat's last stored items matching label.
func (p *Pipeline) Filter(chatID int64, label string) []domain.NewsItem {
	return p.sessions.FilterByEmotion(chatID, label)
}

func (p *Pipeline) warn(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}
