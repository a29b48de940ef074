package service

import (
	"sync"

	"github.com/zentrader/zen-trader-backend/internal/model"
	"github.com/zentrader/zen-trader-backend/internal/repository"
)

// JournalService owns the append-only journal. Entries are prepended
// (newest first) and individually immutable; only a full reset
// removes them.
type JournalService struct {
	repo *repository.StateRepository

	mu sync.Mutex
}

// NewJournalService creates a new JournalService.
func NewJournalService(repo *repository.StateRepository) *JournalService {
	return &JournalService{repo: repo}
}

// List returns journal entries newest first, optionally filtered by
// result. An empty filter returns everything.
func (s *JournalService) List(filter model.TradeResult) ([]model.JournalEntry, error) {
	entries, err := s.repo.LoadJournal()
	if err != nil {
		return nil, err
	}
	if filter == "" {
		return entries, nil
	}

	filtered := []model.JournalEntry{}
	for _, e := range entries {
		if e.Result == filter {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

// Add prepends a finished entry to the journal.
func (s *JournalService) Add(entry model.JournalEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.repo.LoadJournal()
	if err != nil {
		return err
	}

	entries = append([]model.JournalEntry{entry}, entries...)
	return s.repo.SaveJournal(entries)
}
