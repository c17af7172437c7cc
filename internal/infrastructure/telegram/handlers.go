package telegram

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"NewsMoodBot/internal/ports"
	"NewsMoodBot/internal/tagger"
)

const (
	emotionCallbackPrefix = "emotion_"
	progressPrefix        = "Оценка эмоций: "
)

const welcomeText = "<b>Привет!</b> 👋\n\n" +
	"Я — новостной бот, который анализирует эмоциональную окраску новостей с сайта " +
	"<a href='https://lenta.ru'>Lenta.ru</a>.\n" +
	"Введите дату или диапазон дат в формате <b>ДД-ММ-ГГГГ</b>.\n\n" +
	"<b>Примеры:</b>\n" +
	"Один день: <code>15-03-2025</code>\n" +
	"Диапазон: <code>01-01-2025 31-01-2025</code>\n\n" +
	"Если нужны подсказки, используйте команду <b>/help</b>."

const helpText = "<b>Инструкция по использованию:</b>\n\n" +
	"1. Введите дату или диапазон дат в формате <b>ДД-ММ-ГГГГ</b>.\n" +
	"   Например, <code>15-03-2025</code> или <code>01-01-2025 31-01-2025</code>.\n\n" +
	"2. Бот соберёт новости с <a href='https://lenta.ru'>Lenta.ru</a> и проанализирует их эмоциональную окраску.\n\n" +
	"3. Вы увидите график с распределением эмоций и сможете выбрать нужную категорию для просмотра новостей.\n\n" +
	"Приятного использования! 😊"

const invalidInputText = "Неверный формат ввода. Пожалуйста, введите дату или диапазон дат в формате <b>ДД-ММ-ГГГГ</b>."

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.sendHTML(msg.Chat.ID, welcomeText)
	case "help":
		b.sendHTML(msg.Chat.ID, helpText)
	default:
		b.sendHTML(msg.Chat.ID, "Неизвестная команда. Используйте /help.")
	}
}

// handleQuery runs one full query cycle: parse dates, collect, report the
// batch size, tag with a live progress message, then send the chart and the
// category keyboard. Malformed input aborts before any network I/O.
func (b *Bot) handleQuery(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	start, end, err := parseQuery(msg.Text)
	if err != nil {
		b.logger.Debug("bad date input", "chat_id", chatID, "text", msg.Text, "error", err)
		b.sendHTML(chatID, invalidInputText)
		return
	}

	items := b.pipeline.Collect(ctx, start, end)
	if start.Equal(end) {
		b.sendHTML(chatID, fmt.Sprintf("Найдено <b>%d</b> новостей за <b>%s</b>.", len(items), start.Format("2006-01-02")))
	} else {
		b.sendHTML(chatID, fmt.Sprintf("Обработано новостей за период <b>%s</b> - <b>%s</b>.", start.Format("2006-01-02"), end.Format("2006-01-02")))
	}

	if len(items) == 0 {
		b.sendHTML(chatID, "Новостей не найдено. Попробуйте другую дату или диапазон.")
		return
	}

	sink := b.progressMessage(chatID)

	items, counts, err := b.pipeline.Analyze(ctx, chatID, items, sink)
	if err != nil {
		b.logger.Error("analyze failed", "chat_id", chatID, "error", err)
		return
	}

	b.sendChart(chatID, counts)

	keyboard := categoryKeyboard()
	prompt := tgbotapi.NewMessage(chatID, "Выберите категорию эмоций для просмотра новостей:")
	prompt.ReplyMarkup = keyboard
	if _, err := b.api.Send(prompt); err != nil {
		b.logger.Error("send keyboard failed", "chat_id", chatID, "error", err)
	}

	b.logger.Info("query served", "chat_id", chatID, "items", len(items))
}

func (b *Bot) handleCallback(cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil || !strings.HasPrefix(cb.Data, emotionCallbackPrefix) {
		return
	}

	chatID := cb.Message.Chat.ID
	label := strings.ToLower(strings.TrimPrefix(cb.Data, emotionCallbackPrefix))

	filtered := b.pipeline.Filter(chatID, label)
	b.sendHTML(chatID, buildFilteredResponse(label, filtered))

	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		b.logger.Debug("answer callback failed", "error", err)
	}
}

// progressMessage sends the initial status message and returns a sink that
// edits it in place. If the send fails the query proceeds without progress
// display.
func (b *Bot) progressMessage(chatID int64) ports.ProgressSink {
	sent, err := b.api.Send(tgbotapi.NewMessage(chatID, progressPrefix+tagger.FormatProgress(0)))
	if err != nil {
		b.logger.Debug("progress message failed", "chat_id", chatID, "error", err)
		return nil
	}
	return &messageSink{api: b.api, chatID: chatID, messageID: sent.MessageID}
}

func (b *Bot) sendChart(chatID int64, counts map[string]int) {
	png, err := b.chart.RenderBarChart(counts)
	if err != nil {
		b.logger.Error("render chart failed", "chat_id", chatID, "error", err)
		return
	}

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "emotions.png", Bytes: png})
	photo.Caption = "График распределения эмоций новостей"
	if _, err := b.api.Send(photo); err != nil {
		b.logger.Error("send chart failed", "chat_id", chatID, "error", err)
	}
}
