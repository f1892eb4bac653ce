package ledger

import (
	"context"
	"sync"
)

// MemoryEntryStore keeps the archive in memory, in commit order.
type MemoryEntryStore struct {
	mu      sync.RWMutex
	entries []Entry
}

func NewMemoryEntryStore() *MemoryEntryStore {
	return &MemoryEntryStore{}
}

func (s *MemoryEntryStore) Append(_ context.Context, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}

func (s *MemoryEntryStore) List(_ context.Context) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}
