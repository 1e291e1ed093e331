package store

import (
	"strings"
	"sync"

	"estate-console/internal/domain"
)

// AdminStore holds the normalized admin accounts.
type AdminStore struct {
	mu     sync.RWMutex
	admins []domain.Admin
}

func NewAdminStore() *AdminStore {
	return &AdminStore{}
}

// Set replaces the admin slice.
func (s *AdminStore) Set(admins []domain.Admin) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.admins = append([]domain.Admin(nil), admins...)
}

// All returns a copy of every admin account.
func (s *AdminStore) All() []domain.Admin {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Admin(nil), s.admins...)
}

// Upsert inserts or replaces one admin.
func (s *AdminStore) Upsert(a domain.Admin) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.admins {
		if s.admins[i].ID == a.ID {
			s.admins[i] = a
			return
		}
	}
	s.admins = append(s.admins, a)
}

// Remove drops one admin by id.
func (s *AdminStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.admins {
		if s.admins[i].ID == id {
			s.admins = append(s.admins[:i], s.admins[i+1:]...)
			return
		}
	}
}

// FindDuplicate reports any cached admin that already uses the given email
// or phone, excluding excludeID. This is the advisory pre-check: the cache
// can be stale, so the backend's own duplicate check stays authoritative.
func (s *AdminStore) FindDuplicate(email, phone, excludeID string) (field string, match domain.Admin, found bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.admins {
		if a.ID == excludeID {
			continue
		}
		if email != "" && strings.EqualFold(a.Email, email) {
			return "email", a, true
		}
		if phone != "" && a.Phone == phone {
			return "phone", a, true
		}
	}
	return "", domain.Admin{}, false
}
