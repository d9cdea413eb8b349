package orders

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PGRepo struct{ DB *pgxpool.Pool }

func (r *PGRepo) Create(ctx context.Context, o *Order) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.Status == "" {
		o.Status = StatusPending
	}
	_, err := r.DB.Exec(ctx, `
		INSERT INTO orders(id, session_id, email, total_pence, status)
		VALUES ($1, $2, $3, $4, $5)`,
		o.ID, o.SessionID, o.Email, o.TotalPence, o.Status)
	return err
}

func (r *PGRepo) GetBySession(ctx context.Context, sessionID string) (*Order, error) {
	var (
		o        Order
		shipping []byte
		billing  []byte
	)
	err := r.DB.QueryRow(ctx, `
		SELECT id, session_id, email, total_pence, status, buyer_name,
		       shipping_address, billing_address, payment_ref, cancel_reason,
		       created_at, updated_at
		FROM orders WHERE session_id=$1`, sessionID).
		Scan(&o.ID, &o.SessionID, &o.Email, &o.TotalPence, &o.Status, &o.BuyerName,
			&shipping, &billing, &o.PaymentRef, &o.CancelReason,
			&o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if len(shipping) > 0 {
		_ = json.Unmarshal(shipping, &o.ShippingAddress)
	}
	if len(billing) > 0 {
		_ = json.Unmarshal(billing, &o.BillingAddress)
	}
	return &o, nil
}

// MarkPaid flips a pending order to paid and attaches the buyer details
// from the checkout event. The status guard in the WHERE clause is what
// makes redelivered events harmless.
func (r *PGRepo) MarkPaid(ctx context.Context, sessionID string, d PaidDetails) (bool, error) {
	shipping, _ := json.Marshal(d.ShippingAddress)
	billing, _ := json.Marshal(d.BillingAddress)
	ct, err := r.DB.Exec(ctx, `
		UPDATE orders
		SET status=$2, buyer_name=$3, shipping_address=$4, billing_address=$5,
		    payment_ref=$6, updated_at=now()
		WHERE session_id=$1 AND status=$7`,
		sessionID, StatusPaid, d.BuyerName, shipping, billing, d.PaymentRef, StatusPending)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() == 1, nil
}

func (r *PGRepo) MarkCancelled(ctx context.Context, sessionID, reason string) (bool, error) {
	ct, err := r.DB.Exec(ctx, `
		UPDATE orders SET status=$2, cancel_reason=$3, updated_at=now()
		WHERE session_id=$1 AND status=$4`,
		sessionID, StatusCancelled, reason, StatusPending)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() == 1, nil
}

func (r *PGRepo) MarkCancelledByPaymentRef(ctx context.Context, paymentRef, reason string) (bool, error) {
	ct, err := r.DB.Exec(ctx, `
		UPDATE orders SET status=$2, cancel_reason=$3, updated_at=now()
		WHERE payment_ref=$1 AND status=$4`,
		paymentRef, StatusCancelled, reason, StatusPending)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() == 1, nil
}

func (r *PGRepo) RecordEvent(ctx context.Context, eventID string) (bool, error) {
	ct, err := r.DB.Exec(ctx, `
		INSERT INTO webhook_events(event_id) VALUES ($1)
		ON CONFLICT (event_id) DO NOTHING`, eventID)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() == 1, nil
}
