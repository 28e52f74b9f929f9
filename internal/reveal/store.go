package reveal

import (
	"slices"
	"sync"
)

// Store holds the monotonic reveal flag of every element in a page session.
// Reads are safe from any goroutine.
type Store struct {
	mu       sync.RWMutex
	revealed map[string]bool
}

func NewStore() *Store {
	return &Store{revealed: make(map[string]bool)}
}

// MarkRevealed flips id to revealed. It reports whether this call made the
// transition; marking an already revealed id is a no-op.
func (s *Store) MarkRevealed(id string) bool {
	if id == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.revealed[id] {
		return false
	}
	s.revealed[id] = true
	return true
}

// IsRevealed returns false for ids that were never revealed.
func (s *Store) IsRevealed(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revealed[id]
}

// Revealed returns the revealed ids, sorted.
func (s *Store) Revealed() []string {
	s.mu.RLock()
	ids := make([]string, 0, len(s.revealed))
	for id := range s.revealed {
		ids = append(ids, id)
	}
	s.mu.RUnlock()
	slices.Sort(ids)
	return ids
}

// Len returns how many ids have been revealed.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.revealed)
}
