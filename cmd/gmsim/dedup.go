package main

import "sync"

// recentSet remembers the last capacity keys it admitted, evicting the
// oldest first. Safe for concurrent use.
type recentSet struct {
	mu      sync.Mutex
	members map[string]struct{}
	ring    []string
	next    int
}

func newRecentSet(capacity int) *recentSet {
	return &recentSet{
		members: make(map[string]struct{}, capacity),
		ring:    make([]string, max(capacity, 1)),
	}
}

// Add admits key and reports whether it was not already present
func (s *recentSet) Add(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.members[key]; ok {
		return false
	}

	if old := s.ring[s.next]; old != "" {
		delete(s.members, old)
	}
	s.ring[s.next] = key
	s.next = (s.next + 1) % len(s.ring)
	s.members[key] = struct{}{}
	return true
}

// Len returns the number of remembered keys
func (s *recentSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.members)
}
