package tagger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"NewsMoodBot/internal/domain"
	"NewsMoodBot/internal/ports"
)

const (
	defaultInterval = 500 * time.Millisecond
	barSegments     = 10
)

// Tagger drives the classifier over a batch of news items, one item at a
// time. The classifier is a single shared resource, so calls are never
// parallelized; a background reporter emits approximate progress instead.
type Tagger struct {
	classifier ports.Classifier
	labels     []string
	interval   time.Duration
	logger     *slog.Logger
}

// New builds a tagger over the fixed candidate label set.
func New(classifier ports.Classifier, logger *slog.Logger) *Tagger {
	return &Tagger{
		classifier: classifier,
		labels:     domain.CandidateLabels,
		interval:   defaultInterval,
		logger:     logger,
	}
}

// progressState is shared between the tagging loop and the reporter.
// The loop is the sole writer; the reporter only reads.
type progressState struct {
	completed atomic.Int64
	finished  atomic.Bool
	total     int64
}

func (p *progressState) percent() int {
	if p.total == 0 {
		return 100
	}
	return int(p.completed.Load() * 100 / p.total)
}

// Tag classifies every item in input order and sets PredictedEmotion to the
// top-ranked label, or to the sentinel when the classifier fails for that
// item. While the loop runs, a reporter goroutine polls shared progress and
// emits a visual bar through sink every interval; emit failures are
// swallowed. Tag returns after the reporter has observed completion and
// performed its final 100% emit.
//
// Cancelling ctx stops the loop between items; already-tagged items keep
// their labels.
func (t *Tagger) Tag(ctx context.Context, items []domain.NewsItem, sink ports.ProgressSink) []domain.NewsItem {
	state := &progressState{total: int64(len(items))}

	reporterDone := make(chan struct{})
	go t.report(state, sink, reporterDone)

	for i := range items {
		if ctx.Err() != nil {
			break
		}

		combined := items[i].Headline
		if items[i].Snippet != "" {
			combined += ". " + items[i].Snippet
		}
		items[i].CombinedText = combined

		ranked, err := t.classifier.Classify(ctx, combined, t.labels)
		if err != nil {
			t.logf(slog.LevelError, "classification failed", "url", items[i].URL, "error", err)
			items[i].PredictedEmotion = domain.LabelUndetermined
		} else {
			items[i].PredictedEmotion = ranked[0]
		}

		state.completed.Add(1)
	}

	state.finished.Store(true)
	<-reporterDone

	return items
}

// report polls the shared counters until the loop marks itself finished,
// then emits once more at 100% so the status display always ends complete.
func (t *Tagger) report(state *progressState, sink ports.ProgressSink, done chan struct{}) {
	defer close(done)

	if sink == nil {
		return
	}

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for !state.finished.Load() {
		t.emit(sink, state.percent())
		<-ticker.C
	}
	t.emit(sink, 100)
}

// emit is best-effort: a deleted status message must never abort tagging.
func (t *Tagger) emit(sink ports.ProgressSink, percent int) {
	if err := sink.Emit(FormatProgress(percent)); err != nil {
		t.logf(slog.LevelDebug, "progress emit failed", "error", err)
	}
}

// FormatProgress renders a fixed-width 10-segment bar plus the numeric
// percent, e.g. "🔵🔵🔵🔵⚪⚪⚪⚪⚪⚪ 40%".
func FormatProgress(percent int) string {
	filled := percent * barSegments / 100
	if filled > barSegments {
		filled = barSegments
	}
	if filled < 0 {
		filled = 0
	}

	return fmt.Sprintf("%s%s %d%%",
		strings.Repeat("🔵", filled),
		strings.Repeat("⚪", barSegments-filled),
		percent)
}

func (t *Tagger) logf(level slog.Level, msg string, args ...any) {
	if t.logger != nil {
		t.logger.Log(context.Background(), level, msg, args...)
	}
}
