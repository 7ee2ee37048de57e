package session

import (
	"sync"
	"time"

	"offbeat-travels/internal/infrastructure/sharding"

	"github.com/google/uuid"
)

// Session ties an opaque token to one authenticated user. The shard
// is resolved once at login and carried here so handlers never
// re-derive it from client-supplied data.
type Session struct {
	Token     string
	UserID    uint
	Username  string
	Shard     sharding.ShardID
	ExpiresAt time.Time
}

// Store is an in-process session table guarded by a RWMutex. One
// process, one store; sessions do not survive restarts.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

// NewStore creates a session store with the given TTL.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

// Create issues a new session for the user and returns it.
func (s *Store) Create(userID uint, username string, shard sharding.ShardID) *Session {
	sess := &Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		Username:  username,
		Shard:     shard,
		ExpiresAt: time.Now().Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[sess.Token] = sess
	s.mu.Unlock()

	return sess
}

// Get returns the session for the token, or nil when the token is
// unknown or expired. Expired entries are removed lazily.
func (s *Store) Get(token string) *Session {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil
	}
	if time.Now().After(sess.ExpiresAt) {
		s.Delete(token)
		return nil
	}
	return sess
}

// Delete removes the session for the token.
func (s *Store) Delete(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// Purge drops all expired sessions. Called periodically from main.
func (s *Store) Purge() {
	now := time.Now()
	s.mu.Lock()
	for token, sess := range s.sessions {
		if now.After(sess.ExpiresAt) {
			delete(s.sessions, token)
		}
	}
	s.mu.Unlock()
}
