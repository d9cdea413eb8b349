package leads

import (
	"errors"
	"time"
)

type RequestType string

const (
	TypeConcierge RequestType = "concierge"
	TypeClinic    RequestType = "clinic"
	TypeTradeIn   RequestType = "trade_in"
	TypeOther     RequestType = "other"
)

const StatusNew = "new"

// Lead is a contact-form submission awaiting manual follow-up.
// Append-only; status changes happen outside this service.
type Lead struct {
	ID          string      `json:"id"`
	FirstName   string      `json:"first_name,omitempty"`
	LastName    string      `json:"last_name,omitempty"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone,omitempty"`
	RequestType RequestType `json:"request_type"`
	Message     string      `json:"message"`
	Attachments []string    `json:"attachments,omitempty"`
	Status      string      `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
}

var (
	ErrEmailRequired   = errors.New("email is required")
	ErrMessageRequired = errors.New("message is required")
)

// Validate checks required fields and fills defaults.
func (l *Lead) Validate() error {
	if l.Email == "" {
		return ErrEmailRequired
	}
	if l.Message == "" {
		return ErrMessageRequired
	}
	if l.RequestType == "" {
		l.RequestType = TypeOther
	}
	if l.Status == "" {
		l.Status = StatusNew
	}
	return nil
}
