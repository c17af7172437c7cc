package telegram

import (
	"strings"
	"testing"
	"time"

	"NewsMoodBot/internal/domain"
)

func TestParseQuerySingleDate(t *testing.T) {
	t.Parallel()

	start, end, err := parseQuery("03-03-2025")
	if err != nil {
		t.Fatalf("parseQuery error: %v", err)
	}
	want := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	if !start.Equal(want) || !end.Equal(want) {
		t.Fatalf("single date: start=%v end=%v, want both %v", start, end, want)
	}
}

func TestParseQueryReversedRange(t *testing.T) {
	t.Parallel()

	start, end, err := parseQuery("05-03-2025 03-03-2025")
	if err != nil {
		t.Fatalf("parseQuery error: %v", err)
	}
	if !start.Before(end) {
		t.Fatalf("reversed range not swapped: start=%v end=%v", start, end)
	}
	if start.Day() != 3 || end.Day() != 5 {
		t.Fatalf("unexpected bounds: start=%v end=%v", start, end)
	}
}

func TestParseQueryInvalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "сегодня", "2025-03-03", "01-01-2025 02-01-2025 03-01-2025"} {
		if _, _, err := parseQuery(in); err == nil {
			t.Fatalf("parseQuery(%q) expected error", in)
		}
	}
}

func TestBuildFilteredResponse(t *testing.T) {
	t.Parallel()

	if got := buildFilteredResponse("позитив", nil); !strings.Contains(got, "не найдено") {
		t.Fatalf("empty response missing not-found text: %q", got)
	}

	day := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	items := []domain.NewsItem{
		{Headline: "Хорошая новость", URL: "https://lenta.ru/news/1/", Date: &day},
		{Headline: "Без даты", URL: "https://lenta.ru/news/2/"},
	}

	got := buildFilteredResponse("позитив", items)
	for _, want := range []string{
		"Найдено 2 новостей",
		"• Хорошая новость (<i>2025-03-03</i>)",
		"• Без даты\n",
		"<a href='https://lenta.ru/news/1/'>Читать</a>",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("response missing %q:\n%s", want, got)
		}
	}
}

func TestCategoryKeyboard(t *testing.T) {
	t.Parallel()

	kb := categoryKeyboard()
	if len(kb.InlineKeyboard) != len(domain.CandidateLabels) {
		t.Fatalf("expected %d rows, got %d", len(domain.CandidateLabels), len(kb.InlineKeyboard))
	}

	first := kb.InlineKeyboard[0][0]
	if first.Text != "Агрессия" {
		t.Fatalf("unexpected first button text: %q", first.Text)
	}
	if first.CallbackData == nil || *first.CallbackData != "emotion_агрессия" {
		t.Fatalf("unexpected callback data: %v", first.CallbackData)
	}
}

func TestCapitalize(t *testing.T) {
	t.Parallel()

	tests := []struct{ in, want string }{
		{"позитив", "Позитив"},
		{"нейтральное состояние", "Нейтральное состояние"},
		{"", ""},
		{"Уже", "Уже"},
	}
	for _, tt := range tests {
		if got := capitalize(tt.in); got != tt.want {
			t.Fatalf("capitalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
