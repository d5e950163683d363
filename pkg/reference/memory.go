package reference

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/layout"
)

// MemoryStore keeps reference tables in maps. It is the default store and
// the one tests use.
type MemoryStore struct {
	mu     sync.RWMutex
	tables map[Table]map[string]struct{}
}

// NewMemoryStore creates an empty store. Every table reports ErrTableNotLoaded
// until codes are loaded for it.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tables: make(map[Table]map[string]struct{})}
}

// NewDefaultMemoryStore creates a store preloaded with the tables that ship
// with the layout: teaching stages and knowledge areas.
func NewDefaultMemoryStore() *MemoryStore {
	s := NewMemoryStore()
	s.Load(Step, layout.DefaultStages.Codes())

	areas := make([]string, 0, layout.KnowledgeAreaCount)
	for code := 1; code <= layout.KnowledgeAreaCount; code++ {
		areas = append(areas, strconv.Itoa(code))
	}
	s.Load(KnowledgeArea, areas)
	return s
}

// Load adds codes to a table, creating it if needed.
func (s *MemoryStore) Load(table Table, codes []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tables[table]
	if !ok {
		t = make(map[string]struct{}, len(codes))
		s.tables[table] = t
	}
	for _, c := range codes {
		t[c] = struct{}{}
	}
}

// Replace swaps the whole content of a table.
func (s *MemoryStore) Replace(table Table, codes []string) {
	t := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		t[c] = struct{}{}
	}

	s.mu.Lock()
	s.tables[table] = t
	s.mu.Unlock()
}

// IsValidCode implements Lookup.
func (s *MemoryStore) IsValidCode(_ context.Context, table Table, code string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tables[table]
	if !ok {
		return false, ErrTableNotLoaded
	}
	_, found := t[code]
	return found, nil
}

// Codes returns the sorted codes of a table.
func (s *MemoryStore) Codes(table Table) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.tables[table]))
	for c := range s.tables[table] {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Count returns the number of codes per loaded table.
func (s *MemoryStore) Count() map[Table]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[Table]int, len(s.tables))
	for t, codes := range s.tables {
		out[t] = len(codes)
	}
	return out
}
