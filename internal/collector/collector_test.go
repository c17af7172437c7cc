package collector

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"NewsMoodBot/internal/domain"
)

type stubSource struct {
	mu      sync.Mutex
	failDay time.Time
	crawled []time.Time
}

func (s *stubSource) Crawl(_ context.Context, day time.Time) ([]domain.NewsItem, error) {
	s.mu.Lock()
	s.crawled = append(s.crawled, day)
	s.mu.Unlock()

	if day.Equal(s.failDay) {
		return nil, errors.New("index unreachable")
	}
	return []domain.NewsItem{
		{Headline: "Новость за " + day.Format("02-01-2006"), URL: "https://lenta.ru/" + day.Format("2006/01/02") + "/"},
	}, nil
}

func TestCollectRange(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)
	source := &stubSource{failDay: time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC)}

	byDay := New(source, nil).Collect(context.Background(), start, end)

	if len(byDay) != 3 {
		t.Fatalf("expected 3 days, got %d: %v", len(byDay), byDay)
	}
	if len(source.crawled) != 3 {
		t.Fatalf("expected 3 crawls, got %d", len(source.crawled))
	}

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		items, ok := byDay[d]
		if !ok {
			t.Fatalf("missing day %s", d.Format("2006-01-02"))
		}
		if d.Equal(source.failDay) {
			if len(items) != 0 {
				t.Fatalf("failed day must be empty, got %+v", items)
			}
			continue
		}
		if len(items) != 1 {
			t.Fatalf("day %s has %d items, want 1", d.Format("2006-01-02"), len(items))
		}
		if items[0].Date == nil || !items[0].Date.Equal(d) {
			t.Fatalf("day %s item has wrong date stamp: %v", d.Format("2006-01-02"), items[0].Date)
		}
	}
}

func TestCollectReversedRange(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)
	source := &stubSource{}

	byDay := New(source, nil).Collect(context.Background(), end, start)
	if len(byDay) != 3 {
		t.Fatalf("reversed range: expected 3 days, got %d", len(byDay))
	}
	if _, ok := byDay[start]; !ok {
		t.Fatalf("reversed range missing start day: %v", byDay)
	}
}

func TestCollectSingleDay(t *testing.T) {
	t.Parallel()

	day := time.Date(2025, time.March, 3, 15, 30, 0, 0, time.UTC)
	source := &stubSource{}

	byDay := New(source, nil).Collect(context.Background(), day, day)
	if len(byDay) != 1 {
		t.Fatalf("expected 1 day, got %d", len(byDay))
	}
	if _, ok := byDay[Normalize(day)]; !ok {
		t.Fatalf("key not normalized to calendar date: %v", byDay)
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("MSK", 3*60*60)
	in := time.Date(2025, time.March, 4, 1, 30, 0, 0, loc)

	got := Normalize(in)
	want := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("Normalize(%v) = %v, want %v", in, got, want)
	}
}
