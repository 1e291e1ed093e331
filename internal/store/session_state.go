package store

import (
	"sync"

	"estate-console/internal/domain"
)

// SessionStore holds who is currently logged in. The bearer token itself
// lives behind the session.TokenStore port, not here.
type SessionStore struct {
	mu      sync.RWMutex
	current *domain.Admin
	master  *domain.MasterAdmin
}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// SetCurrentAdmin records the logged-in regular admin.
func (s *SessionStore) SetCurrentAdmin(a *domain.Admin) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a == nil {
		s.current = nil
		return
	}
	cp := *a
	s.current = &cp
}

// CurrentAdmin returns the logged-in regular admin, if any.
func (s *SessionStore) CurrentAdmin() (domain.Admin, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return domain.Admin{}, false
	}
	return *s.current, true
}

// SetMasterAdmin records the logged-in master admin session.
func (s *SessionStore) SetMasterAdmin(m *domain.MasterAdmin) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m == nil {
		s.master = nil
		return
	}
	cp := *m
	s.master = &cp
}

// MasterAdmin returns the master admin session, if any.
func (s *SessionStore) MasterAdmin() (domain.MasterAdmin, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.master == nil {
		return domain.MasterAdmin{}, false
	}
	return *s.master, true
}

// Clear wipes the session state (logout or 401).
func (s *SessionStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	s.master = nil
}
