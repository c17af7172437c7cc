package collector

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"NewsMoodBot/internal/domain"
	"NewsMoodBot/internal/ports"
)

const maxParallelDays = 4

// Collector iterates a news source over an inclusive date span. Days have
// no ordering dependency between each other, so they are crawled with
// bounded parallelism; a failed day degrades to an empty list instead of
// aborting the range.
type Collector struct {
	source ports.NewsSource
	logger *slog.Logger
}

// New wires a day-level news source.
func New(source ports.NewsSource, logger *slog.Logger) *Collector {
	return &Collector{source: source, logger: logger}
}

// Collect returns a map from every date in [start, end] (both inclusive,
// swapped when reversed) to that day's items, each stamped with its source
// date. The same URL on two different days yields two items, one per date;
// there is no inter-day deduplication.
func (c *Collector) Collect(ctx context.Context, start, end time.Time) map[time.Time][]domain.NewsItem {
	start, end = Normalize(start), Normalize(end)
	if start.After(end) {
		start, end = end, start
	}

	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}

	results := make([][]domain.NewsItem, len(days))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelDays)
	for i, day := range days {
		i, day := i, day
		g.Go(func() error {
			items, err := c.source.Crawl(gctx, day)
			if err != nil {
				c.warn("day crawl failed", "day", day.Format("2006-01-02"), "error", err)
				items = nil
			}

			for j := range items {
				d := day
				items[j].Date = &d
			}
			results[i] = items
			return nil
		})
	}
	// Per-day failures are already downgraded to empty lists above.
	_ = g.Wait()

	byDay := make(map[time.Time][]domain.NewsItem, len(days))
	for i, day := range days {
		byDay[day] = results[i]
	}
	return byDay
}

// Normalize truncates a timestamp to its UTC calendar date, the key form
// used throughout range collection.
func Normalize(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (c *Collector) warn(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Warn(msg, args...)
	}
}
