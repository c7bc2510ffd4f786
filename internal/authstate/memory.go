package authstate

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// sweepInterval bounds memory growth from abandoned login attempts.
// Expiry itself is enforced lazily at Consume time, so the sweeper is
// about resources, not correctness.
const sweepInterval = time.Minute

// MemoryStore is an in-process Store. Suitable for a single instance;
// use the Redis store when running more than one.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]Session
	stop     chan struct{}
	stopOnce sync.Once
}

func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		sessions: make(map[string]Session),
		stop:     make(chan struct{}),
	}
	go s.sweep()
	return s
}

func (s *MemoryStore) Create(_ context.Context, sess Session) error {
	if sess.State == "" {
		return fmt.Errorf("authstate: missing state")
	}
	if time.Until(sess.ExpiresAt) <= 0 {
		return fmt.Errorf("authstate: expires_at must be in the future")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.State] = sess
	return nil
}

func (s *MemoryStore) Consume(_ context.Context, state string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[state]
	if !ok {
		return nil, nil
	}
	delete(s.sessions, state)

	if time.Now().After(sess.ExpiresAt) {
		return nil, nil // expired entry counts as missing
	}
	return &sess, nil
}

// Close stops the background sweeper.
func (s *MemoryStore) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *MemoryStore) sweep() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for state, sess := range s.sessions {
				if now.After(sess.ExpiresAt) {
					delete(s.sessions, state)
				}
			}
			s.mu.Unlock()
		}
	}
}
