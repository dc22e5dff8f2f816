package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/example/essencia/internal/cart"
)

// Store is the in-memory session registry, keyed by session ID. Sessions
// expire with their tokens: once a session outlives the TTL it is treated
// as gone and swept out lazily, so the registry cannot grow without bound.
type Store struct {
	pricing cart.Pricing
	ttl     time.Duration

	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

// NewStore builds an empty registry whose sessions price carts with the
// given rates and live for ttl. A non-positive ttl disables expiry.
func NewStore(pricing cart.Pricing, ttl time.Duration) *Store {
	return &Store{
		pricing:  pricing,
		ttl:      ttl,
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Create sweeps out expired sessions, then registers and returns a fresh
// one.
func (s *Store) Create() *Session {
	sess := newSession(s.pricing)
	s.mu.Lock()
	for id, existing := range s.sessions {
		if s.expired(existing) {
			delete(s.sessions, id)
		}
	}
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Get looks a session up by ID. An expired session is dropped and reported
// as absent, the same as a token that no longer parses.
func (s *Store) Get(id uuid.UUID) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	if s.expired(sess) {
		delete(s.sessions, id)
		return nil, false
	}
	return sess, true
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Store) expired(sess *Session) bool {
	return s.ttl > 0 && time.Since(sess.CreatedAt) > s.ttl
}
