package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"NewsMoodBot/internal/ports"
	"NewsMoodBot/internal/usecase"
)

// Bot is the conversational front-end: it accepts dates or date ranges,
// runs the query pipeline, and serves category-filtered results through an
// inline keyboard.
type Bot struct {
	api      *tgbotapi.BotAPI
	pipeline *usecase.Pipeline
	chart    ports.ChartRenderer
	logger   *slog.Logger
}

var _ usecase.DigestPublisher = (*Bot)(nil)

// New authenticates against the Telegram bot API.
func New(token string, pipeline *usecase.Pipeline, chartRenderer ports.ChartRenderer, logger *slog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}

	return &Bot{
		api:      api,
		pipeline: pipeline,
		chart:    chartRenderer,
		logger:   logger,
	}, nil
}

// Run long-polls for updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30
	updates := b.api.GetUpdatesChan(cfg)

	b.logger.Info("bot started", "username", b.api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(update.CallbackQuery)
	case update.Message == nil:
	case update.Message.IsCommand():
		b.handleCommand(update.Message)
	default:
		// A query fetches and classifies for a while; keep polling
		// responsive. One pipeline runs per chat at a time by usage
		// convention (a user waits for their progress bar).
		go b.handleQuery(ctx, update.Message)
	}
}

// PublishDigest sends the scheduled daily chart to the digest chat.
func (b *Bot) PublishDigest(ctx context.Context, chatID int64, day time.Time, counts map[string]int) error {
	png, err := b.chart.RenderBarChart(counts)
	if err != nil {
		return fmt.Errorf("render digest chart: %w", err)
	}

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "emotions.png", Bytes: png})
	photo.Caption = fmt.Sprintf("Эмоции новостей за %s", day.Format("02-01-2006"))
	if _, err := b.api.Send(photo); err != nil {
		return fmt.Errorf("send digest photo: %w", err)
	}
	return nil
}

func (b *Bot) sendHTML(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("send message failed", "chat_id", chatID, "error", err)
	}
}
