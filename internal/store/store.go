// Package store persists user state in Badger. Catalog data never
// touches the store; only gene profiles and archetype assignments are
// written, keyed by their ids.
package store

import (
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"github.com/heritageapp/heritage-server/internal/domain"
)

// Store wraps a Badger database instance.
type Store struct {
	db     *badger.DB
	logger *slog.Logger

	Profiles    *Entity[domain.GeneProfile]
	Assignments *Entity[domain.GeneAssignment]
}

// New opens the database at path and initializes the entity handles.
func New(path string, logger *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil
	opts.SyncWrites = true
	opts.CompactL0OnClose = true

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	s := &Store{db: db, logger: logger}
	s.Profiles = NewEntity[domain.GeneProfile](s, "profile:")
	s.Assignments = NewEntity[domain.GeneAssignment](s, "assignment:")

	if logger != nil {
		logger.Info("Badger database opened successfully", "path", path)
	}
	return s, nil
}

// Close gracefully closes the database connection.
func (s *Store) Close() error {
	if s.logger != nil {
		s.logger.Info("Closing database connection")
	}
	return s.db.Close()
}
