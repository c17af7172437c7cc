package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"NewsMoodBot/internal/collector"
	"NewsMoodBot/internal/config"
	"NewsMoodBot/internal/domain"
	"NewsMoodBot/internal/infrastructure/chart"
	"NewsMoodBot/internal/infrastructure/fetch"
	"NewsMoodBot/internal/infrastructure/ml"
	"NewsMoodBot/internal/infrastructure/parser"
	"NewsMoodBot/internal/infrastructure/scheduler"
	"NewsMoodBot/internal/infrastructure/telegram"
	"NewsMoodBot/internal/logging"
	"NewsMoodBot/internal/session"
	"NewsMoodBot/internal/tagger"
	"NewsMoodBot/internal/usecase"
)

// Application wires configuration to use cases and lifecycle orchestration.
type Application struct {
	cfg      config.Config
	logger   *slog.Logger
	pipeline *usecase.Pipeline
}

// New builds the full dependency graph.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level, cfg.Logging.Format)
	}

	fetcher := fetch.NewClient(cfg.Crawler)
	crawler := parser.NewDayCrawler(fetcher, cfg.Crawler.BaseURL, baseLogger.With("component", "crawler"))
	snippets := parser.NewSnippetExtractor(fetcher, baseLogger.With("component", "snippets"))
	classifier := ml.NewClient(cfg.ML)

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Source:    crawler,
		Collector: collector.New(crawler, baseLogger.With("component", "collector")),
		Snippets:  snippets,
		Tagger:    tagger.New(classifier, baseLogger.With("component", "tagger")),
		Sessions:  session.NewStore(),
		Logger:    baseLogger.With("component", "pipeline"),
	})

	return &Application{cfg: cfg, logger: baseLogger, pipeline: pipeline}
}

// Serve runs the Telegram bot until ctx is cancelled. When the daily digest
// is enabled, its cron job runs alongside the bot.
func (a *Application) Serve(ctx context.Context) error {
	bot, err := telegram.New(a.cfg.Telegram.BotToken, a.pipeline, chart.NewRenderer(), a.logger.With("component", "bot"))
	if err != nil {
		return fmt.Errorf("init telegram bot: %w", err)
	}

	if a.cfg.Digest.Enabled {
		driver := scheduler.NewCronScheduler(a.cfg.Digest.CronExpression, a.cfg.Digest.Location())
		digest := usecase.NewDigest(driver, a.pipeline, bot, a.cfg.Digest.ChatID, a.cfg.Digest.Location(), a.logger.With("component", "digest"))
		if err := digest.Start(ctx); err != nil {
			return fmt.Errorf("start digest: %w", err)
		}
		defer func() { _ = digest.Stop(context.Background()) }()
	}

	return bot.Run(ctx)
}

// ScanOnce performs a single query without Telegram and prints the label
// counts, progress going to the log.
func (a *Application) ScanOnce(ctx context.Context, start, end time.Time) error {
	items, counts, err := a.pipeline.Run(ctx, 0, start, end, logSink{a.logger})
	if err != nil {
		return fmt.Errorf("run pipeline: %w", err)
	}

	a.logger.Info("scan finished", "items", len(items))
	for _, label := range domain.CandidateLabels {
		fmt.Printf("%-24s %d\n", label, counts[label])
	}
	return nil
}

// logSink routes progress updates to the log for console runs.
type logSink struct {
	logger *slog.Logger
}

func (s logSink) Emit(text string) error {
	s.logger.Info("progress", "bar", text)
	return nil
}
