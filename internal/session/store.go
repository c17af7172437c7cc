package session

import (
	"strings"
	"sync"

	"NewsMoodBot/internal/domain"
)

// Store keeps the most recently tagged batch per chat for later
// category-filtered retrieval. It lives for the process lifetime and is
// injected into whatever serves conversation requests; batches are
// overwritten wholesale on each new query and treated as immutable once
// stored.
type Store struct {
	mu      sync.RWMutex
	batches map[int64][]domain.NewsItem
}

// NewStore builds an empty session store.
func NewStore() *Store {
	return &Store{batches: make(map[int64][]domain.NewsItem)}
}

// Put replaces the stored batch for a chat.
func (s *Store) Put(chatID int64, items []domain.NewsItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches[chatID] = items
}

// Get returns the last stored batch for a chat, or an empty list when the
// chat has no batch yet.
func (s *Store) Get(chatID int64) []domain.NewsItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.batches[chatID]
}

// FilterByEmotion returns the subset of the chat's last batch whose
// predicted emotion matches label, case-insensitively.
func (s *Store) FilterByEmotion(chatID int64, label string) []domain.NewsItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var filtered []domain.NewsItem
	for _, item := range s.batches[chatID] {
		if strings.EqualFold(item.PredictedEmotion, label) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
