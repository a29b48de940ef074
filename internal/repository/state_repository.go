package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/zentrader/zen-trader-backend/internal/model"
)

// Storage keys for the two persisted documents. The suffix versions
// the serialized shape.
const (
	keyPortfolio = "zen_portfolio_v1"
	keyJournal   = "zen_journal_v1"
)

// StateRepository persists the portfolio and journal as whole JSON
// documents in the app_state table, one row per key. Every save is a
// full overwrite; absence of a key silently yields defaults rather
// than an error, so a fresh installation needs no seeding step.
type StateRepository struct {
	db *sql.DB
}

// NewStateRepository creates a new StateRepository with the provided database connection.
func NewStateRepository(db *sql.DB) *StateRepository {
	return &StateRepository{db: db}
}

// LoadPortfolio retrieves the persisted portfolio, or the default
// portfolio when none has been saved yet.
func (s *StateRepository) LoadPortfolio() (model.Portfolio, error) {
	raw, err := s.load(keyPortfolio)
	if err == sql.ErrNoRows {
		return model.NewPortfolio(), nil
	}
	if err != nil {
		return model.Portfolio{}, fmt.Errorf("failed to query portfolio state: %w", err)
	}

	var p model.Portfolio
	if err := json.Unmarshal(raw, &p); err != nil {
		return model.Portfolio{}, fmt.Errorf("failed to decode portfolio state: %w", err)
	}
	if p.Assets == nil {
		p.Assets = []model.Asset{}
	}
	return p, nil
}

// SavePortfolio overwrites the persisted portfolio.
func (s *StateRepository) SavePortfolio(p model.Portfolio) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode portfolio state: %w", err)
	}
	if err := s.save(keyPortfolio, raw); err != nil {
		return fmt.Errorf("failed to write portfolio state: %w", err)
	}
	return nil
}

// LoadJournal retrieves the persisted journal entries, newest first,
// or an empty journal when none has been saved yet.
func (s *StateRepository) LoadJournal() ([]model.JournalEntry, error) {
	raw, err := s.load(keyJournal)
	if err == sql.ErrNoRows {
		return []model.JournalEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query journal state: %w", err)
	}

	var entries []model.JournalEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode journal state: %w", err)
	}
	if entries == nil {
		entries = []model.JournalEntry{}
	}
	return entries, nil
}

// SaveJournal overwrites the persisted journal.
func (s *StateRepository) SaveJournal(entries []model.JournalEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode journal state: %w", err)
	}
	if err := s.save(keyJournal, raw); err != nil {
		return fmt.Errorf("failed to write journal state: %w", err)
	}
	return nil
}

// Reset removes both persisted documents so the next load yields the
// defaults again.
func (s *StateRepository) Reset() error {
	if _, err := s.db.Exec("DELETE FROM app_state WHERE key IN (?, ?)", keyPortfolio, keyJournal); err != nil {
		return fmt.Errorf("failed to reset state: %w", err)
	}
	return nil
}

func (s *StateRepository) load(key string) ([]byte, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM app_state WHERE key = ?", key).Scan(&value)
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

func (s *StateRepository) save(key string, value []byte) error {
	_, err := s.db.Exec(`
          INSERT INTO app_state (key, value, updated_at)
          VALUES (?, ?, ?)
          ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
      `, key, string(value), time.Now().UnixMilli())
	return err
}
