// Package session holds the stored bearer token and derives the
// authentication and authorization state the CLI renders from. The token
// is decoded without signature verification: everything here is a UI-level
// hint, and the backend independently enforces every privileged call.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const credentialsFileName = "credentials.json"

// Store persists the active bearer token. Any string is accepted; no
// validation happens at this layer. Clear is idempotent.
type Store interface {
	Save(token string) error
	Get() (string, bool)
	Clear() error
}

type credentials struct {
	Token string `json:"token"`
}

// FileStore keeps the token in a credentials file under a config
// directory, surviving process restarts. Plain read/write, no cross-process
// locking: concurrent writers from multiple processes are out of scope.
type FileStore struct {
	dir string
}

// NewFileStore creates a store rooted at dir (e.g. ~/.lettings).
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// DefaultStoreDir returns the default credentials directory, ~/.lettings.
func DefaultStoreDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("find home directory: %w", err)
	}
	return filepath.Join(home, ".lettings"), nil
}

func (s *FileStore) path() string {
	return filepath.Join(s.dir, credentialsFileName)
}

// Save writes the token, replacing any previous credential.
func (s *FileStore) Save(token string) error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := json.MarshalIndent(credentials{Token: token}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal credentials: %w", err)
	}
	if err := os.WriteFile(s.path(), data, 0600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}

// Get returns the stored token. The second result is false when no
// credential exists or the file is unreadable.
func (s *FileStore) Get() (string, bool) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		return "", false
	}
	var creds credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return "", false
	}
	if creds.Token == "" {
		return "", false
	}
	return creds.Token, true
}

// Clear removes the credential. Clearing an already-empty store is a no-op.
func (s *FileStore) Clear() error {
	err := os.Remove(s.path())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove credentials: %w", err)
	}
	return nil
}

// MemStore is an in-memory Store for tests and for running several
// independent sessions in one process.
type MemStore struct {
	mu    sync.Mutex
	token string
	set   bool
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// Save stores the token.
func (s *MemStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.set = true
	return nil
}

// Get returns the stored token, if any.
func (s *MemStore) Get() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.set && s.token != ""
}

// Clear removes the token.
func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.set = false
	return nil
}
