package orders

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("order not found")

// Repo persists orders and the webhook idempotency record. The Mark*
// methods apply the pending->terminal transition in a single guarded
// update and report whether it was applied; a false return with nil
// error means the order was already in a terminal state.
type Repo interface {
	Create(ctx context.Context, o *Order) error
	GetBySession(ctx context.Context, sessionID string) (*Order, error)
	MarkPaid(ctx context.Context, sessionID string, d PaidDetails) (bool, error)
	MarkCancelled(ctx context.Context, sessionID, reason string) (bool, error)
	MarkCancelledByPaymentRef(ctx context.Context, paymentRef, reason string) (bool, error)

	// RecordEvent notes a webhook event id and reports whether this is
	// the first delivery. Duplicate ids must not re-apply transitions.
	RecordEvent(ctx context.Context, eventID string) (first bool, err error)
}
