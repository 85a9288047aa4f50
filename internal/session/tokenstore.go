package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// ErrNoToken is returned when no token has been stored yet.
var ErrNoToken = errors.New("no auth token stored")

// TokenStore is the secure-storage collaborator holding the credential
// token under the "authToken" key. The stores and the API client never see
// it; only the session reads and writes it.
type TokenStore interface {
	Token() (string, error)
	SetToken(token string) error
	Clear() error
}

const tokenFileName = "authToken"

// FileTokenStore keeps the token in a 0600 file inside a config directory,
// the closest desktop analogue to the mobile app's secure storage.
type FileTokenStore struct {
	dir string
}

// NewFileTokenStore creates a store rooted at dir, creating it if needed.
func NewFileTokenStore(dir string) (*FileTokenStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create token dir: %w", err)
	}
	return &FileTokenStore{dir: dir}, nil
}

func (s *FileTokenStore) path() string {
	return filepath.Join(s.dir, tokenFileName)
}

// Token reads the stored token, ErrNoToken when absent.
func (s *FileTokenStore) Token() (string, error) {
	b, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoToken
		}
		return "", fmt.Errorf("read token: %w", err)
	}
	token := strings.TrimSpace(string(b))
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

// SetToken overwrites the stored token.
func (s *FileTokenStore) SetToken(token string) error {
	if err := os.WriteFile(s.path(), []byte(token), 0o600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

// Clear removes the stored token. Clearing an empty store is fine.
func (s *FileTokenStore) Clear() error {
	if err := os.Remove(s.path()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}

// MemoryTokenStore is an in-process TokenStore for tests.
type MemoryTokenStore struct {
	mu    sync.Mutex
	token string
	set   bool
}

func (s *MemoryTokenStore) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return "", ErrNoToken
	}
	return s.token, nil
}

func (s *MemoryTokenStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.set = token, true
	return nil
}

func (s *MemoryTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.set = "", false
	return nil
}
