package events

import (
	"context"
	"sync"

	"starnotary/internal/notary/models"
)

// MemorySink keeps events in order of arrival. It backs the in-process audit
// trail and gives tests a seam to observe notifications.
type MemorySink struct {
	mu     sync.RWMutex
	events []Event
}

func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// All returns a copy of every recorded event.
func (s *MemorySink) All() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// ByToken returns recorded events for one token.
func (s *MemorySink) ByToken(token models.TokenID) []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Event
	for _, e := range s.events {
		if e.Token == token {
			out = append(out, e)
		}
	}
	return out
}
