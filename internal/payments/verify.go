package payments

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
)

var ErrSignatureRequired = errors.New("webhook signature verification required in production")

// Event is the provider-neutral shape of an inbound webhook event.
type Event struct {
	ID   string
	Type string
	Data json.RawMessage // the event's object payload
}

// Verifier authenticates inbound webhook payloads. Without a secret it
// accepts unsigned events, but only outside production.
type Verifier struct {
	Secret     string
	Production bool
}

func (v Verifier) ParseEvent(payload []byte, sigHeader string) (Event, error) {
	if v.Secret != "" {
		se, err := webhook.ConstructEvent(payload, sigHeader, v.Secret)
		if err != nil {
			return Event{}, err
		}
		return fromStripeEvent(se), nil
	}
	if v.Production {
		return Event{}, ErrSignatureRequired
	}
	log.Println("WARNING: webhook signature verification skipped (no secret configured)")
	var se stripe.Event
	if err := json.Unmarshal(payload, &se); err != nil {
		return Event{}, err
	}
	return fromStripeEvent(se), nil
}

func fromStripeEvent(se stripe.Event) Event {
	e := Event{ID: se.ID, Type: string(se.Type)}
	if se.Data != nil {
		e.Data = se.Data.Raw
	}
	return e
}
