package auth

import (
	"sync"
	"time"
)

// OAuthState holds the per-flow parameters stored between the authorize
// redirect and the provider callback.
type OAuthState struct {
	State           string
	Verifier        string
	RedirectURI     string
	AnonymousUserID string
}

type stateEntry struct {
	state     OAuthState
	expiresAt time.Time
}

// StateStore keeps OAuth PKCE state in process memory with a fixed TTL.
// Entries are popped on retrieval (read-once). The store does not survive
// restarts and does not coordinate across instances; a multi-instance
// deployment needs a shared store instead.
type StateStore struct {
	mu      sync.Mutex
	entries map[string]stateEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewStateStore(ttl time.Duration) *StateStore {
	if ttl == 0 {
		ttl = 10 * time.Minute
	}
	return &StateStore{
		entries: make(map[string]stateEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *StateStore) Put(st OAuthState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[st.State] = stateEntry{state: st, expiresAt: s.now().Add(s.ttl)}
}

// Pop removes and returns the entry for state. Expired entries count as
// missing.
func (s *StateStore) Pop(state string) (OAuthState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[state]
	if !ok {
		return OAuthState{}, false
	}
	delete(s.entries, state)

	if s.now().After(entry.expiresAt) {
		return OAuthState{}, false
	}
	return entry.state, true
}

// Sweep purges expired-but-unclaimed entries and reports how many were
// removed.
func (s *StateStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for k, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, k)
			removed++
		}
	}
	return removed
}

func (s *StateStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
