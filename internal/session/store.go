// Package session keeps one demo journal per browser session.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rustyeddy/tradejournal/internal/id"
	"github.com/rustyeddy/tradejournal/internal/logger"
	"github.com/rustyeddy/tradejournal/journal"
)

var ErrNotFound = errors.New("session not found")

type entry struct {
	mu       sync.Mutex
	engine   *journal.Engine
	lastSeen time.Time
}

// Store maps session ids to engines. Engines are not safe for concurrent
// use, so every access goes through With, which holds the session lock.
type Store struct {
	mu        sync.Mutex
	sessions  map[string]*entry
	ttl       time.Duration
	max       int
	newEngine func() *journal.Engine
	now       func() time.Time
}

type Option func(*Store)

// WithTTL evicts sessions idle longer than d on Sweep. Zero disables it.
func WithTTL(d time.Duration) Option {
	return func(s *Store) { s.ttl = d }
}

// WithMax caps the number of live sessions; the least recently used one
// is dropped to make room. Zero means unlimited.
func WithMax(n int) Option {
	return func(s *Store) { s.max = n }
}

// WithEngineFactory sets how a fresh session's engine is built. A nil
// factory is ignored.
func WithEngineFactory(fn func() *journal.Engine) Option {
	return func(s *Store) {
		if fn != nil {
			s.newEngine = fn
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		sessions: make(map[string]*entry),
		newEngine: func() *journal.Engine {
			return journal.NewDemoEngine()
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create starts a session and returns its id.
func (s *Store) Create() string {
	sid := id.New()
	e := &entry{engine: s.newEngine(), lastSeen: s.now()}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.max > 0 && len(s.sessions) >= s.max {
		s.evictOldestLocked()
	}
	s.sessions[sid] = e
	return sid
}

// evictOldestLocked is called with s.mu held; it takes each entry lock
// in turn, the same order Sweep uses.
func (s *Store) evictOldestLocked() {
	var oldest string
	var at time.Time
	for k, e := range s.sessions {
		e.mu.Lock()
		seen := e.lastSeen
		e.mu.Unlock()
		if oldest == "" || seen.Before(at) {
			oldest, at = k, seen
		}
	}
	if oldest != "" {
		delete(s.sessions, oldest)
	}
}

func (s *Store) lookup(sid string) (*entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[sid]
	return e, ok
}

// Has reports whether sid names a live session.
func (s *Store) Has(sid string) bool {
	_, ok := s.lookup(sid)
	return ok
}

// With runs fn against the session's engine while holding its lock.
func (s *Store) With(sid string, fn func(*journal.Engine) error) error {
	e, ok := s.lookup(sid)
	if !ok {
		return ErrNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastSeen = s.now()
	return fn(e.engine)
}

func (s *Store) Delete(sid string) {
	s.mu.Lock()
	delete(s.sessions, sid)
	s.mu.Unlock()
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops sessions idle longer than the TTL and returns how many
// were removed.
func (s *Store) Sweep(now time.Time) int {
	if s.ttl <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for k, e := range s.sessions {
		e.mu.Lock()
		idle := now.Sub(e.lastSeen)
		e.mu.Unlock()
		if idle > s.ttl {
			delete(s.sessions, k)
			n++
		}
	}
	return n
}

// Run sweeps every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	if s.ttl <= 0 || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(s.now()); n > 0 {
				logger.Debug(ctx, "sessions expired", "count", n, "live", s.Len())
			}
		}
	}
}
