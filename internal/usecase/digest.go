package usecase

import (
	"context"
	"log/slog"
	"time"

	"NewsMoodBot/internal/ports"
)

// DigestPublisher delivers a finished daily digest to its destination chat.
type DigestPublisher interface {
	PublishDigest(ctx context.Context, chatID int64, day time.Time, counts map[string]int) error
}

// Digest wires the cron driver with a scheduled pipeline run over
// yesterday's news, published to a fixed chat.
type Digest struct {
	driver    ports.Scheduler
	pipeline  *Pipeline
	publisher DigestPublisher
	chatID    int64
	location  *time.Location
	logger    *slog.Logger
}

// NewDigest returns a helper to start/stop the recurring digest job.
func NewDigest(driver ports.Scheduler, pipeline *Pipeline, publisher DigestPublisher, chatID int64, loc *time.Location, logger *slog.Logger) *Digest {
	if loc == nil {
		loc = time.UTC
	}
	return &Digest{
		driver:    driver,
		pipeline:  pipeline,
		publisher: publisher,
		chatID:    chatID,
		location:  loc,
		logger:    logger,
	}
}

// Start registers the digest job with the scheduler.
func (d *Digest) Start(ctx context.Context) error {
	if d.driver == nil || d.pipeline == nil {
		return nil
	}

	return d.driver.Start(ctx, func(trigger time.Time) {
		d.run(ctx, trigger)
	})
}

// Stop gracefully tears down the underlying scheduler.
func (d *Digest) Stop(ctx context.Context) error {
	if d.driver == nil {
		return nil
	}
	return d.driver.Stop(ctx)
}

func (d *Digest) run(ctx context.Context, trigger time.Time) {
	day := trigger.In(d.location).AddDate(0, 0, -1)

	_, counts, err := d.pipeline.Run(ctx, d.chatID, day, day, nil)
	if err != nil {
		d.error("digest pipeline failed", "error", err)
		return
	}

	if d.publisher == nil {
		return
	}
	if err := d.publisher.PublishDigest(ctx, d.chatID, day, counts); err != nil {
		d.error("digest publish failed", "error", err)
	}
}

func (d *Digest) error(msg string, args ...any) {
	if d.logger != nil {
		d.logger.Error(msg, args...)
	}
}
