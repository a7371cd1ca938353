// Package session models one client's interaction with the store: its
// cart, its provisional delivery profile, and the user it is logged in as.
// Identity is always passed explicitly through a Session handle; nothing
// reads ambient global state.
package session

import (
	"sync"

	"github.com/google/uuid"
	"github.com/malakstore/souq/internal/cart"
	"github.com/malakstore/souq/internal/models"
)

type Session struct {
	ID   string
	Cart *cart.Cart

	mu   sync.Mutex
	user *models.User
	temp models.Profile // provisional profile entered this session
}

func newSession() *Session {
	return &Session{
		ID:   uuid.NewString(),
		Cart: cart.New(),
	}
}

// User returns the authenticated user, or nil for a guest session.
func (s *Session) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) SetUser(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u == nil {
		s.user = nil
		return
	}
	copied := *u
	s.user = &copied
}

// UserID returns the owning user id for orders placed by this session.
func (s *Session) UserID() string {
	if u := s.User(); u != nil {
		return u.ID
	}
	return models.GuestUserID
}

// SetTempProfile records delivery details entered during this session
// without requiring an account.
func (s *Session) SetTempProfile(p models.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.temp = p
}

// ResolveProfile builds the delivery profile for order creation. Each field
// prefers the authenticated user's stored value and falls back to the
// session's provisional entry.
func (s *Session) ResolveProfile() models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.temp
	if s.user != nil {
		if s.user.Name != "" {
			p.Name = s.user.Name
		}
		if s.user.Phone != "" {
			p.Phone = s.user.Phone
		}
		if s.user.Location != "" {
			p.Location = s.user.Location
		}
	}
	return p
}

// Manager hands out sessions keyed by opaque tokens.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Open creates a fresh session and returns it.
func (m *Manager) Open() *Session {
	s := newSession()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return s
}

// Get returns the session for a token, or nil when the token is unknown.
func (m *Manager) Get(token string) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[token]
}

// Close discards a session and its cart.
func (m *Manager) Close(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
}
