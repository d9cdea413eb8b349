package payments

import (
	"context"
	"encoding/json"
	"errors"
)

var ErrSessionNotFound = errors.New("checkout session not found")

// LineItem is one priced entry sent to the payment processor. Amounts
// are in pence; the server computes them, never the client.
type LineItem struct {
	ProductID   string
	Name        string
	Description string
	ImageURL    string
	UnitPence   int64
	Quantity    int64
}

type CreateSessionParams struct {
	Items         []LineItem
	CustomerEmail string
	CustomConfig  json.RawMessage
}

// Session is the provider-neutral view of a checkout session.
type Session struct {
	ID            string `json:"id"`
	URL           string `json:"url,omitempty"`
	PaymentStatus string `json:"payment_status"`
	CustomerEmail string `json:"customer_email,omitempty"`
	AmountTotal   int64  `json:"amount_total"`
	Currency      string `json:"currency,omitempty"`
}

// Provider abstracts the hosted payment processor. A nil Provider in the
// handlers means payments are not configured (503 to callers).
type Provider interface {
	CreateSession(ctx context.Context, p CreateSessionParams) (*Session, error)
	GetSession(ctx context.Context, id string) (*Session, error)
}
