package cart

import (
	"context"
	"encoding/json"
	"sync"
)

// Store persists carts between requests, keyed by an opaque cart id the
// client holds on to.
type Store interface {
	Load(ctx context.Context, cartID string) (Cart, error)
	Save(ctx context.Context, cartID string, c Cart) error
}

// decode turns stored bytes back into a cart. Unparsable data yields an
// empty cart rather than an error: a corrupt blob must never brick the
// storefront.
func decode(b []byte) Cart {
	var c Cart
	if err := json.Unmarshal(b, &c); err != nil {
		return Cart{}
	}
	return c
}

// MemoryStore holds carts in process memory. Used in tests; the server
// keeps carts in Redis.
type MemoryStore struct {
	mu    sync.Mutex
	carts map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: map[string][]byte{}}
}

func (s *MemoryStore) Load(_ context.Context, cartID string) (Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.carts[cartID]
	if !ok {
		return Cart{}, nil
	}
	return decode(b), nil
}

func (s *MemoryStore) Save(_ context.Context, cartID string, c Cart) error {
	b, err := json.Marshal(c)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[cartID] = b
	return nil
}
