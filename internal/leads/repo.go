package leads

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Repo interface {
	Create(ctx context.Context, l *Lead) error
	List(ctx context.Context) ([]Lead, error) // newest first
}

type MemoryRepo struct {
	mu    sync.Mutex
	leads []Lead
}

func NewMemoryRepo() *MemoryRepo { return &MemoryRepo{} }

func (r *MemoryRepo) Create(_ context.Context, l *Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	l.CreatedAt = time.Now().UTC()
	r.leads = append(r.leads, *l)
	return nil
}

func (r *MemoryRepo) List(_ context.Context) ([]Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	// append-only, so reversed insertion order is newest-first
	out := make([]Lead, 0, len(r.leads))
	for i := len(r.leads) - 1; i >= 0; i-- {
		out = append(out, r.leads[i])
	}
	return out, nil
}
