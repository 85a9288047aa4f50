package state

import (
	"sync"

	"github.com/vowsync/vowsync/internal/models"
)

// AuthStore caches the authenticated principal's display identity. It never
// holds credentials; token custody belongs to the session's token store.
type AuthStore struct {
	mu       sync.Mutex
	identity models.Identity
}

// NewAuthStore creates an empty identity cache.
func NewAuthStore() *AuthStore {
	return &AuthStore{}
}

// SetEmail records the signed-in email.
func (s *AuthStore) SetEmail(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity.Email = email
}

// SetUserID records the signed-in user ID.
func (s *AuthStore) SetUserID(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity.UserID = userID
}

// Identity returns the cached identity.
func (s *AuthStore) Identity() models.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

// Clear wipes the identity, e.g. on logout.
func (s *AuthStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = models.Identity{}
}
