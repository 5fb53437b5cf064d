package session

import (
	"log"
	"sync"
	"time"
)

const DefaultTTL = 30 * time.Minute

type entry struct {
	session *Session
	touched time.Time
}

// Store keeps one Session per chat id. Individual sessions are only ever
// mutated by the single handler processing that chat's updates; the lock
// guards the map itself.
type Store struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[int64]*entry
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Store{
		ttl:      ttl,
		sessions: make(map[int64]*entry),
	}
}

func (s *Store) GetOrCreate(chatID int64) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[chatID]
	if !ok {
		e = &entry{session: &Session{Step: StepMenu}}
		s.sessions[chatID] = e
	}
	e.touched = time.Now()

	return e.session
}

// Clear empties the collected fields of an existing session without
// discarding it.
func (s *Store) Clear(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.sessions[chatID]; ok {
		e.session.Reset()
		e.session.Step = StepMenu
		e.touched = time.Now()
	}
}

func (s *Store) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, chatID)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}

// EvictIdle drops sessions untouched for longer than the TTL and reports
// how many were removed.
func (s *Store) EvictIdle(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for chatID, e := range s.sessions {
		if now.Sub(e.touched) > s.ttl {
			delete(s.sessions, chatID)
			evicted++
		}
	}

	return evicted
}

// StartJanitor evicts idle sessions in the background until the returned
// stop function is called.
func (s *Store) StartJanitor(interval time.Duration) func() {
	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if n := s.EvictIdle(time.Now()); n > 0 {
					log.Printf("session janitor: evicted %d idle sessions", n)
				}
			}
		}
	}()

	return func() { close(done) }
}
