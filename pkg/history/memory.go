package history

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStore keeps runs in memory. It backs the CLI when history is
// disabled and the tests of packages that record runs.
type MemoryStore struct {
	mu   sync.RWMutex
	runs map[string]*Run
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{runs: make(map[string]*Run)}
}

// Record stores a copy of run.
func (m *MemoryStore) Record(_ context.Context, run *Run) error {
	if run == nil || run.ID == "" {
		return NewStorageError("memory", "record", errMissingID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *run
	m.runs[run.ID] = &cp
	return nil
}

// Get returns one run by ID.
func (m *MemoryStore) Get(_ context.Context, id string) (*Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	run, ok := m.runs[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *run
	return &cp, nil
}

// List returns matching runs, newest first.
func (m *MemoryStore) List(_ context.Context, q Query) ([]*Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []*Run{}
	for _, run := range m.runs {
		if matches(run, q) {
			cp := *run
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].ValidatedAt.Equal(out[j].ValidatedAt) {
			return out[i].ValidatedAt.After(out[j].ValidatedAt)
		}
		return out[i].ID < out[j].ID
	})

	limit := q.Limit
	if limit <= 0 {
		limit = 100
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// DeleteBefore removes runs validated before t.
func (m *MemoryStore) DeleteBefore(_ context.Context, t time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	for id, run := range m.runs {
		if run.ValidatedAt.Before(t) {
			delete(m.runs, id)
			n++
		}
	}
	return n, nil
}

// Count returns the number of stored runs.
func (m *MemoryStore) Count(context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.runs)), nil
}

// Ping always succeeds.
func (m *MemoryStore) Ping(context.Context) error { return nil }

// Close is a no-op.
func (m *MemoryStore) Close() error { return nil }

func matches(run *Run, q Query) bool {
	switch {
	case q.FileName != "" && run.FileName != q.FileName:
		return false
	case q.SHA256 != "" && run.SHA256 != q.SHA256:
		return false
	case !q.Since.IsZero() && run.ValidatedAt.Before(q.Since):
		return false
	case !q.Until.IsZero() && !run.ValidatedAt.Before(q.Until):
		return false
	case q.Valid != nil && run.Valid != *q.Valid:
		return false
	}
	return true
}

var _ Store = (*MemoryStore)(nil)
