package session

import (
	"testing"

	"NewsMoodBot/internal/domain"
)

func TestStorePutGet(t *testing.T) {
	t.Parallel()

	s := NewStore()

	if got := s.Get(42); len(got) != 0 {
		t.Fatalf("expected empty batch for unknown chat, got %d items", len(got))
	}

	first := []domain.NewsItem{{Headline: "Первая", PredictedEmotion: "позитив"}}
	s.Put(42, first)
	if got := s.Get(42); len(got) != 1 || got[0].Headline != "Первая" {
		t.Fatalf("unexpected batch: %+v", got)
	}

	second := []domain.NewsItem{
		{Headline: "Вторая", PredictedEmotion: "тревожность"},
		{Headline: "Третья", PredictedEmotion: "позитив"},
	}
	s.Put(42, second)
	if got := s.Get(42); len(got) != 2 || got[0].Headline != "Вторая" {
		t.Fatalf("put did not replace the batch: %+v", got)
	}
}

func TestStoreFilterByEmotion(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.Put(7, []domain.NewsItem{
		{Headline: "Хорошее", PredictedEmotion: "позитив"},
		{Headline: "Тревожное", PredictedEmotion: "тревожность"},
		{Headline: "Ещё хорошее", PredictedEmotion: "позитив"},
		{Headline: "Непонятное", PredictedEmotion: domain.LabelUndetermined},
	})

	got := s.FilterByEmotion(7, "ПОЗИТИВ")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d: %+v", len(got), got)
	}
	if got[0].Headline != "Хорошее" || got[1].Headline != "Ещё хорошее" {
		t.Fatalf("order not preserved: %+v", got)
	}

	if got := s.FilterByEmotion(7, "сарказм"); len(got) != 0 {
		t.Fatalf("expected no matches, got %+v", got)
	}
	if got := s.FilterByEmotion(999, "позитив"); len(got) != 0 {
		t.Fatalf("expected no matches for unknown chat, got %+v", got)
	}
}
