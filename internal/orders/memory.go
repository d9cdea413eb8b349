package orders

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepo backs the order book when no database is configured, and
// the handler tests.
type MemoryRepo struct {
	mu        sync.Mutex
	bySession map[string]*Order
	events    map[string]bool
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		bySession: map[string]*Order{},
		events:    map[string]bool{},
	}
}

func (r *MemoryRepo) Create(_ context.Context, o *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.Status == "" {
		o.Status = StatusPending
	}
	now := time.Now().UTC()
	o.CreatedAt, o.UpdatedAt = now, now
	cp := *o
	r.bySession[o.SessionID] = &cp
	return nil
}

func (r *MemoryRepo) GetBySession(_ context.Context, sessionID string) (*Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.bySession[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *MemoryRepo) MarkPaid(_ context.Context, sessionID string, d PaidDetails) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.bySession[sessionID]
	if !ok || !CanTransition(o.Status, StatusPaid) {
		return false, nil
	}
	o.Status = StatusPaid
	o.BuyerName = d.BuyerName
	o.ShippingAddress = d.ShippingAddress
	o.BillingAddress = d.BillingAddress
	o.PaymentRef = d.PaymentRef
	o.UpdatedAt = time.Now().UTC()
	return true, nil
}

func (r *MemoryRepo) MarkCancelled(_ context.Context, sessionID, reason string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.bySession[sessionID]
	if !ok || !CanTransition(o.Status, StatusCancelled) {
		return false, nil
	}
	o.Status = StatusCancelled
	o.CancelReason = reason
	o.UpdatedAt = time.Now().UTC()
	return true, nil
}

func (r *MemoryRepo) MarkCancelledByPaymentRef(_ context.Context, paymentRef, reason string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.bySession {
		if o.PaymentRef == paymentRef && CanTransition(o.Status, StatusCancelled) {
			o.Status = StatusCancelled
			o.CancelReason = reason
			o.UpdatedAt = time.Now().UTC()
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryRepo) RecordEvent(_ context.Context, eventID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.events[eventID] {
		return false, nil
	}
	r.events[eventID] = true
	return true, nil
}
