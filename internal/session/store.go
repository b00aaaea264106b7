package session

import (
	"errors"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"memu-demos/internal/model"
)

// ErrBusy is returned when a session already has a request round-trip in
// flight. The orchestrator is strictly sequential per session.
var ErrBusy = errors.New("session: request already in flight")

// State is the orchestrator state of one UI session.
type State string

const (
	StateIdle       State = "idle"
	StateProcessing State = "processing"
)

const (
	defaultMaxSessions = 1024
	defaultTTL         = 30 * time.Minute
)

// Session holds the per-browser-session transcript and in-flight flag.
// All mutation goes through the methods below; the zero value is not usable.
type Session struct {
	ID    string
	Scope model.Scope

	mu         sync.Mutex
	state      State
	transcript []model.Turn
}

// Begin transitions idle → processing. A second call before Finish
// reports ErrBusy.
func (s *Session) Begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateProcessing {
		return ErrBusy
	}
	s.state = StateProcessing
	return nil
}

// Finish transitions back to idle, on completion or error.
func (s *Session) Finish() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateIdle
}

// State reports the current orchestrator state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Append adds turns to the transcript.
func (s *Session) Append(turns ...model.Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = append(s.transcript, turns...)
}

// Transcript returns a copy of the transcript.
func (s *Session) Transcript() []model.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Turn, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Reset clears the transcript without touching the in-flight state.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = nil
}

// Store keeps sessions in a bounded, TTL-evicting cache so abandoned
// browser sessions do not accumulate.
type Store struct {
	mu    sync.Mutex
	cache *expirable.LRU[string, *Session]
}

// NewStore creates a session store. Zero values select the defaults.
func NewStore(maxSessions int, ttl time.Duration) *Store {
	if maxSessions <= 0 {
		maxSessions = defaultMaxSessions
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Store{
		cache: expirable.NewLRU[string, *Session](maxSessions, nil, ttl),
	}
}

// GetOrCreate returns the session for id, creating it with the given scope
// on first sight.
func (st *Store) GetOrCreate(id string, sc model.Scope) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	if s, ok := st.cache.Get(id); ok {
		return s
	}
	s := &Session{ID: id, Scope: sc, state: StateIdle}
	st.cache.Add(id, s)
	return s
}

// Get returns the session for id if it exists.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.cache.Get(id)
}

// Delete removes a session.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.cache.Remove(id)
}
