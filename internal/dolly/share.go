package dolly

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

var ErrNotFound = errors.New("configuration not found")

// SavedConfig is a configuration persisted under a share id. The config
// payload is kept verbatim and returned exactly as saved.
type SavedConfig struct {
	ShareID    string          `json:"share_id"`
	Config     json.RawMessage `json:"config"`
	TotalPrice int             `json:"total_price"`
	UserEmail  string          `json:"user_email,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

type ShareStore interface {
	Save(ctx context.Context, sc SavedConfig) error
	Get(ctx context.Context, shareID string) (SavedConfig, error)
}

// NewShareID generates a short URL-safe identifier. A fresh id is issued
// on every save; saved configurations are never mutated in place.
func NewShareID() (string, error) {
	return gonanoid.New(10)
}

type MemoryShareStore struct {
	mu      sync.Mutex
	configs map[string]SavedConfig
}

func NewMemoryShareStore() *MemoryShareStore {
	return &MemoryShareStore{configs: map[string]SavedConfig{}}
}

func (s *MemoryShareStore) Save(_ context.Context, sc SavedConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.configs[sc.ShareID] = sc
	return nil
}

func (s *MemoryShareStore) Get(_ context.Context, shareID string) (SavedConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sc, ok := s.configs[shareID]
	if !ok {
		return SavedConfig{}, ErrNotFound
	}
	return sc, nil
}
