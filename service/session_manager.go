package service

import (
	"context"
	"sync"
	"time"

	"bankist/logger"
	"bankist/model"

	"github.com/google/uuid"
)

type managedSession struct {
	session   *Session
	expiresAt time.Time
}

// SessionManager keeps one Session per logged-in client, keyed by an opaque
// session id. Entries are dropped when they expire or when their session is
// no longer logged in.
type SessionManager struct {
	mu         sync.Mutex
	sessions   map[string]managedSession
	newSession func() *Session
	ttl        time.Duration
	clock      func() time.Time
}

type ManagerOption func(*SessionManager)

// WithSessionTTL bounds how long a session lives after login. It should match
// the token lifetime. Zero means sessions never expire.
func WithSessionTTL(ttl time.Duration) ManagerOption {
	return func(m *SessionManager) { m.ttl = ttl }
}

func WithManagerClock(clock func() time.Time) ManagerOption {
	return func(m *SessionManager) { m.clock = clock }
}

func NewSessionManager(newSession func() *Session, opts ...ManagerOption) *SessionManager {
	m := &SessionManager{
		sessions:   make(map[string]managedSession),
		newSession: newSession,
		clock:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *SessionManager) expired(entry managedSession, now time.Time) bool {
	return !entry.expiresAt.IsZero() && !now.Before(entry.expiresAt)
}

// Login opens a new session. The session is only registered when the login
// succeeds.
func (m *SessionManager) Login(ctx context.Context, username string, pin int) (string, *model.AccountView, error) {
	s := m.newSession()
	view, err := s.Login(ctx, username, pin)
	if err != nil {
		return "", nil, err
	}

	entry := managedSession{session: s}
	if m.ttl > 0 {
		entry.expiresAt = m.clock().Add(m.ttl)
	}

	id := uuid.NewString()
	m.mu.Lock()
	m.sessions[id] = entry
	m.mu.Unlock()
	return id, view, nil
}

// Get returns the live session for id. An expired session is ended and
// reported as missing.
func (m *SessionManager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	entry, ok := m.sessions[id]
	if ok && m.expired(entry, m.clock()) {
		delete(m.sessions, id)
		ok = false
	}
	m.mu.Unlock()

	if !ok {
		if entry.session != nil {
			entry.session.Logout()
		}
		return nil, false
	}
	return entry.session, true
}

// End logs the session out and forgets it.
func (m *SessionManager) End(id string) {
	m.mu.Lock()
	entry, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if ok {
		entry.session.Logout()
	}
}

// Sweep ends every expired or logged-out session and returns how many were
// removed.
func (m *SessionManager) Sweep() int {
	now := m.clock()

	m.mu.Lock()
	snapshot := make(map[string]managedSession, len(m.sessions))
	for id, entry := range m.sessions {
		snapshot[id] = entry
	}
	m.mu.Unlock()

	var stale []string
	for id, entry := range snapshot {
		if m.expired(entry, now) || !entry.session.LoggedIn() {
			stale = append(stale, id)
		}
	}

	removed := 0
	for _, id := range stale {
		m.mu.Lock()
		entry, ok := m.sessions[id]
		if ok && entry.session == snapshot[id].session {
			delete(m.sessions, id)
		} else {
			ok = false
		}
		m.mu.Unlock()
		if ok {
			entry.session.Logout()
			removed++
		}
	}
	if removed > 0 {
		logger.Log.WithField("removed", removed).Info("Stale sessions removed")
	}
	return removed
}

// RunSweeper calls Sweep every interval until ctx is done.
func (m *SessionManager) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep()
		}
	}
}

// Len counts live sessions, sweeping stale ones first.
func (m *SessionManager) Len() int {
	m.Sweep()
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
