package telegram

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"NewsMoodBot/internal/domain"
)

const dateLayout = "02-01-2006"

// parseQuery interprets user text as "DD-MM-YYYY" or "DD-MM-YYYY DD-MM-YYYY".
// A reversed range is swapped so start <= end always holds for callers.
func parseQuery(text string) (time.Time, time.Time, error) {
	parts := strings.Fields(strings.TrimSpace(text))

	switch len(parts) {
	case 1:
		day, err := time.Parse(dateLayout, parts[0])
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parse date %q: %w", parts[0], err)
		}
		return day, day, nil
	case 2:
		start, err := time.Parse(dateLayout, parts[0])
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parse date %q: %w", parts[0], err)
		}
		end, err := time.Parse(dateLayout, parts[1])
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parse date %q: %w", parts[1], err)
		}
		if start.After(end) {
			start, end = end, start
		}
		return start, end, nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("expected one or two dates, got %d tokens", len(parts))
	}
}

func buildFilteredResponse(label string, items []domain.NewsItem) string {
	if len(items) == 0 {
		return fmt.Sprintf("Новостей с эмоцией '%s' не найдено.", label)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "<b>Найдено %d новостей с эмоцией '%s':</b>\n\n", len(items), label)
	for _, item := range items {
		dateInfo := ""
		if item.Date != nil {
			dateInfo = fmt.Sprintf(" (<i>%s</i>)", item.Date.Format("2006-01-02"))
		}
		fmt.Fprintf(&sb, "• %s%s\nСсылка: <a href='%s'>Читать</a>\n\n", item.Headline, dateInfo, item.URL)
	}
	return sb.String()
}

func categoryKeyboard() tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(domain.CandidateLabels))
	for _, label := range domain.CandidateLabels {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(capitalize(label), emotionCallbackPrefix+label),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
