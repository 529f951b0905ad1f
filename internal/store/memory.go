package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/arthUFO12/CivicProject/internal/model"
)

type memoryDocumentStore struct {
	mu        sync.RWMutex
	current   map[model.Mode]model.Revision
	revisions map[model.Mode][]model.Revision
}

// NewMemoryDocumentStore keeps documents in process memory. Used for local
// development without Redis or Postgres.
func NewMemoryDocumentStore() DocumentStore {
	return &memoryDocumentStore{
		current:   make(map[model.Mode]model.Revision),
		revisions: make(map[model.Mode][]model.Revision),
	}
}

func (s *memoryDocumentStore) Get(_ context.Context, mode model.Mode) (*model.Revision, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rev, ok := s.current[mode]
	if !ok {
		return nil, ErrNotFound
	}
	return &rev, nil
}

func (s *memoryDocumentStore) Put(_ context.Context, rev *model.Revision) error {
	if err := validBody(rev.Body); err != nil {
		return err
	}
	if rev.CreatedAt.IsZero() {
		rev.CreatedAt = time.Now().UTC()
	}

	stored := *rev
	stored.Body = slices.Clone(rev.Body)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current[rev.Mode] = stored
	history := append(s.revisions[rev.Mode], stored)
	if len(history) > revisionLimit {
		history = slices.Clone(history[len(history)-revisionLimit:])
	}
	s.revisions[rev.Mode] = history
	return nil
}

func (s *memoryDocumentStore) ListRevisions(_ context.Context, mode model.Mode, limit int) ([]model.Revision, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.revisions[mode]
	out := make([]model.Revision, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, all[i])
	}
	return out, nil
}

func (s *memoryDocumentStore) Ping(context.Context) error {
	return nil
}

func (s *memoryDocumentStore) Close() error {
	return nil
}
