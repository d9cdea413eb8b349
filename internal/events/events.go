package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	EventOrderPaid      = "OrderPaid"
	EventOrderCancelled = "OrderCancelled"
	EventLeadReceived   = "LeadReceived"
)

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
}

// NewEnvelope wraps a payload in a v1 envelope with a fresh event id.
func NewEnvelope(eventType, producer, correlationID string, payload any) (Envelope, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      producer,
		CorrelationID: correlationID,
		Payload:       b,
	}, nil
}

type OrderPaidPayload struct {
	OrderID    string `json:"order_id"`
	SessionID  string `json:"session_id"`
	Email      string `json:"email,omitempty"`
	BuyerName  string `json:"buyer_name,omitempty"`
	TotalPence int    `json:"total_pence"`
}

type OrderCancelledPayload struct {
	OrderID   string `json:"order_id"`
	SessionID string `json:"session_id"`
	Reason    string `json:"reason"`
}

type LeadReceivedPayload struct {
	LeadID      string `json:"lead_id"`
	Email       string `json:"email"`
	RequestType string `json:"request_type"`
}
