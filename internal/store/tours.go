// Package store holds the in-memory application state — the tour collection
// and the user settings — and mirrors every change to the storage blob
// collaborator. The in-memory copy is the single source of truth; storage
// writes are best-effort and never fail a mutation.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/nvats/travelog/internal/domain"
	"github.com/nvats/travelog/internal/storage"
)

// ToursKey is the storage key of the serialized tour collection.
const ToursKey = "travelog:tours"

// TourStore owns the tour collection and the "currently open tour"
// reference. All methods are safe for concurrent use.
type TourStore struct {
	mu      sync.RWMutex
	tours   []domain.Tour
	openID  *uuid.UUID
	storage storage.Store
	log     *slog.Logger
}

// NewTourStore loads the persisted collection from st and returns a store
// over it. A blob that fails to parse is discarded and the store starts
// empty — a deliberate fail-safe against corrupt state, logged but never
// fatal. A missing blob (first run) also starts empty, without the warning.
func NewTourStore(ctx context.Context, st storage.Store, log *slog.Logger) *TourStore {
	s := &TourStore{storage: st, log: log, tours: []domain.Tour{}}

	blob, err := st.Load(ctx, ToursKey)
	switch {
	case errors.Is(err, storage.ErrNoBlob):
		// First run.
	case err != nil:
		log.Warn("tour store: load failed, starting empty", "error", err)
	default:
		var tours []domain.Tour
		if err := json.Unmarshal(blob, &tours); err != nil {
			log.Warn("tour store: discarding unparseable blob", "error", err)
		} else {
			s.tours = tours
		}
	}
	return s
}

// List returns a deep copy of all tours in insertion order.
func (s *TourStore) List() []domain.Tour {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Tour, len(s.tours))
	for i, t := range s.tours {
		out[i] = t.Clone()
	}
	return out
}

// Get returns a deep copy of the tour with the given ID.
// Returns domain.ErrNotFound if no tour matches.
func (s *TourStore) Get(id uuid.UUID) (domain.Tour, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tours {
		if t.ID == id {
			return t.Clone(), nil
		}
	}
	return domain.Tour{}, domain.ErrNotFound
}

// Upsert replaces the tour with a matching ID, or appends it if absent,
// preserving the order of all other tours, then persists the collection.
func (s *TourStore) Upsert(ctx context.Context, tour domain.Tour) {
	s.mu.Lock()
	defer s.mu.Unlock()
	replaced := false
	for i, t := range s.tours {
		if t.ID == tour.ID {
			s.tours[i] = tour.Clone()
			replaced = true
			break
		}
	}
	if !replaced {
		s.tours = append(s.tours, tour.Clone())
	}
	s.persist(ctx)
}

// Remove deletes the tour with the given ID and persists. Removing an
// unknown ID is a no-op. If the removed tour was open, the open reference
// is cleared.
func (s *TourStore) Remove(ctx context.Context, id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.tours[:0]
	removed := false
	for _, t := range s.tours {
		if t.ID == id {
			removed = true
			continue
		}
		kept = append(kept, t)
	}
	if !removed {
		return
	}
	s.tours = kept
	if s.openID != nil && *s.openID == id {
		s.openID = nil
	}
	s.persist(ctx)
}

// Open marks the tour with the given ID as the currently open tour.
// Returns domain.ErrNotFound if no tour matches. The reference is
// process-local state and is not persisted.
func (s *TourStore) Open(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tours {
		if t.ID == id {
			s.openID = &id
			return nil
		}
	}
	return domain.ErrNotFound
}

// Close clears the open-tour reference.
func (s *TourStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.openID = nil
}

// OpenTour returns a deep copy of the currently open tour, or ok=false
// when none is open.
func (s *TourStore) OpenTour() (domain.Tour, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.openID == nil {
		return domain.Tour{}, false
	}
	for _, t := range s.tours {
		if t.ID == *s.openID {
			return t.Clone(), true
		}
	}
	return domain.Tour{}, false
}

// persist writes the full collection to storage. Persistence is
// fire-and-forget: a failed write is logged and the in-memory state stays
// authoritative. Callers must hold the write lock.
func (s *TourStore) persist(ctx context.Context) {
	blob, err := json.Marshal(s.tours)
	if err != nil {
		s.log.Error("tour store: marshal failed", "error", err)
		return
	}
	if err := s.storage.Save(ctx, ToursKey, blob); err != nil {
		s.log.Error("tour store: save failed", "error", err)
	}
}
