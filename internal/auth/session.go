package auth

import (
	"sync"

	"github.com/google/uuid"

	"github.com/synergysphere/synergy/internal/domain"
)

// Session holds the signed-in identity for one dashboard session and
// fans out identity changes to registered listeners, so dependent
// collections can refetch. It is an explicit dependency, never a global.
type Session struct {
	mu        sync.RWMutex
	user      *domain.Profile
	listeners []func(*domain.Profile)
}

func NewSession() *Session {
	return &Session{}
}

// Set replaces the current identity and notifies listeners. A nil
// profile signs the session out.
func (s *Session) Set(user *domain.Profile) {
	s.mu.Lock()
	s.user = user
	listeners := make([]func(*domain.Profile), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(user)
	}
}

// Clear signs the session out.
func (s *Session) Clear() {
	s.Set(nil)
}

// OnChange registers a listener invoked on every identity change.
func (s *Session) OnChange(fn func(*domain.Profile)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *Session) User() *domain.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// UserID returns the signed-in id, or uuid.Nil when signed out.
func (s *Session) UserID() uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return uuid.Nil
	}
	return s.user.ID
}

func (s *Session) SignedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

func (s *Session) Role() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return ""
	}
	return s.user.Role
}

func (s *Session) IsManager() bool {
	return s.Role() == domain.RoleManager
}

func (s *Session) IsTeam() bool {
	return s.Role() == domain.RoleTeam
}
