package orders

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(StatusPending, StatusPaid))
	assert.True(t, CanTransition(StatusPending, StatusCancelled))

	assert.False(t, CanTransition(StatusPaid, StatusPending))
	assert.False(t, CanTransition(StatusPaid, StatusCancelled))
	assert.False(t, CanTransition(StatusCancelled, StatusPending))
	assert.False(t, CanTransition(StatusCancelled, StatusPaid))
}

func TestMemoryRepo_MarkPaidAppliesOnce(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepo()
	require.NoError(t, r.Create(ctx, &Order{SessionID: "cs_1", TotalPence: 5000}))

	d := PaidDetails{BuyerName: "Ada Lovelace", PaymentRef: "pi_1"}
	applied, err := r.MarkPaid(ctx, "cs_1", d)
	require.NoError(t, err)
	assert.True(t, applied)

	// redelivery: already terminal
	applied, err = r.MarkPaid(ctx, "cs_1", d)
	require.NoError(t, err)
	assert.False(t, applied)

	o, err := r.GetBySession(ctx, "cs_1")
	require.NoError(t, err)
	assert.Equal(t, StatusPaid, o.Status)
	assert.Equal(t, "Ada Lovelace", o.BuyerName)
	assert.Equal(t, "pi_1", o.PaymentRef)
}

func TestMemoryRepo_MarkCancelledRecordsReason(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepo()
	require.NoError(t, r.Create(ctx, &Order{SessionID: "cs_2", TotalPence: 100}))

	applied, err := r.MarkCancelled(ctx, "cs_2", "card declined")
	require.NoError(t, err)
	assert.True(t, applied)

	o, err := r.GetBySession(ctx, "cs_2")
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, o.Status)
	assert.NotEmpty(t, o.CancelReason)

	// a paid order never becomes cancelled
	applied, err = r.MarkPaid(ctx, "cs_2", PaidDetails{})
	require.NoError(t, err)
	assert.False(t, applied)
}

func TestMemoryRepo_MarkCancelledByPaymentRef(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepo()
	o := &Order{SessionID: "cs_3", TotalPence: 100, PaymentRef: "pi_3"}
	require.NoError(t, r.Create(ctx, o))

	applied, err := r.MarkCancelledByPaymentRef(ctx, "pi_3", "payment failed: insufficient funds")
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = r.MarkCancelledByPaymentRef(ctx, "pi_missing", "whatever")
	require.NoError(t, err)
	assert.False(t, applied)
}

func TestMemoryRepo_GetUnknownSession(t *testing.T) {
	r := NewMemoryRepo()
	_, err := r.GetBySession(context.Background(), "cs_missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepo_RecordEventDedups(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepo()

	first, err := r.RecordEvent(ctx, "evt_1")
	require.NoError(t, err)
	assert.True(t, first)

	first, err = r.RecordEvent(ctx, "evt_1")
	require.NoError(t, err)
	assert.False(t, first)

	first, err = r.RecordEvent(ctx, "evt_2")
	require.NoError(t, err)
	assert.True(t, first)
}
