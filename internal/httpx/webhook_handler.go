package httpx

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/holyweird/storefront/internal/events"
	kafkax "github.com/holyweird/storefront/internal/kafka"
	"github.com/holyweird/storefront/internal/orders"
	"github.com/holyweird/storefront/internal/payments"
	"github.com/holyweird/storefront/internal/redisx"
)

// EventVerifier authenticates a raw webhook payload and hands back the
// parsed event fields the handler needs.
type EventVerifier interface {
	ParseEvent(payload []byte, sigHeader string) (payments.Event, error)
}

type WebhookHandler struct {
	Verifier          EventVerifier
	Orders            orders.Repo
	Redis             *redis.Client // optional dedup fast path
	PaidProducer      Publisher
	CancelledProducer Publisher
	Service           string
}

func (h *WebhookHandler) Register(r *chi.Mux) {
	r.Post("/webhooks/payment", h.handle)
}

type webhookSession struct {
	ID              string `json:"id"`
	PaymentIntent   string `json:"payment_intent"`
	AmountTotal     int64  `json:"amount_total"`
	CustomerDetails *struct {
		Email   string          `json:"email"`
		Name    string          `json:"name"`
		Address *orders.Address `json:"address"`
	} `json:"customer_details"`
	ShippingDetails *struct {
		Address *orders.Address `json:"address"`
	} `json:"shipping_details"`
}

type webhookPaymentIntent struct {
	ID               string `json:"id"`
	LastPaymentError *struct {
		Message string `json:"message"`
	} `json:"last_payment_error"`
}

func (h *WebhookHandler) handle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read body")
		return
	}

	event, err := h.Verifier.ParseEvent(body, r.Header.Get("Stripe-Signature"))
	if err != nil {
		log.Printf("webhook signature verification failed: %v", err)
		writeError(w, http.StatusBadRequest, "webhook signature verification failed")
		return
	}

	// Providers redeliver; the same event id must apply at most once.
	dkey := ""
	if event.ID != "" && h.Redis != nil {
		dkey = fmt.Sprintf(redisx.KeyDedup, "webhooks", event.ID)
		if seen, _ := redisx.Exists(r.Context(), h.Redis, dkey); seen {
			writeJSON(w, http.StatusOK, map[string]bool{"received": true})
			return
		}
	}

	switch event.Type {
	case "checkout.session.completed":
		if err := h.handleCheckoutCompleted(r, event.Data); err != nil {
			log.Printf("process %s: %v", event.Type, err)
			writeError(w, http.StatusInternalServerError, "webhook processing failed")
			return
		}
	case "checkout.session.async_payment_failed":
		if err := h.handleSessionPaymentFailed(r, event.Data); err != nil {
			log.Printf("process %s: %v", event.Type, err)
			writeError(w, http.StatusInternalServerError, "webhook processing failed")
			return
		}
	case "payment_intent.payment_failed":
		if err := h.handlePaymentIntentFailed(r, event.Data); err != nil {
			log.Printf("process %s: %v", event.Type, err)
			writeError(w, http.StatusInternalServerError, "webhook processing failed")
			return
		}
	default:
		log.Printf("unhandled webhook event type: %s", event.Type)
	}

	// Mark the event processed only after the handler succeeded: a failed
	// delivery must stay retryable, and the status guard on the transition
	// makes re-applying a delivered event a no-op.
	if event.ID != "" {
		if dkey != "" {
			_ = h.Redis.Set(r.Context(), dkey, "1", redisx.TTLDedup).Err()
		}
		if _, err := h.Orders.RecordEvent(r.Context(), event.ID); err != nil {
			log.Printf("record webhook event %s: %v", event.ID, err)
		}
	}

	writeJSON(w, http.StatusOK, map[string]bool{"received": true})
}

func (h *WebhookHandler) handleCheckoutCompleted(r *http.Request, data json.RawMessage) error {
	var sess webhookSession
	if err := json.Unmarshal(data, &sess); err != nil {
		return fmt.Errorf("decode session: %w", err)
	}

	d := orders.PaidDetails{PaymentRef: sess.PaymentIntent}
	if sess.CustomerDetails != nil {
		d.BuyerName = sess.CustomerDetails.Name
		d.BillingAddress = sess.CustomerDetails.Address
	}
	if sess.ShippingDetails != nil {
		d.ShippingAddress = sess.ShippingDetails.Address
	}

	applied, err := h.Orders.MarkPaid(r.Context(), sess.ID, d)
	if err != nil {
		return err
	}
	if !applied {
		return nil // already terminal, redelivery
	}
	log.Printf("checkout completed: session=%s", sess.ID)

	if h.Redis != nil {
		_ = h.Redis.Del(r.Context(), fmt.Sprintf(redisx.KeySessionStatus, sess.ID)).Err()
	}

	if h.PaidProducer != nil {
		o, err := h.Orders.GetBySession(r.Context(), sess.ID)
		if err != nil {
			log.Printf("load paid order %s: %v", sess.ID, err)
			return nil
		}
		env, err := events.NewEnvelope(events.EventOrderPaid, h.Service, o.ID, events.OrderPaidPayload{
			OrderID:    o.ID,
			SessionID:  o.SessionID,
			Email:      o.Email,
			BuyerName:  o.BuyerName,
			TotalPence: o.TotalPence,
		})
		if err != nil {
			return err
		}
		h.PaidProducer.Publish(events.PartitionKey(o.ID), kafkax.MustMarshal(env),
			kafkago.Header{Key: "x-event-type", Value: []byte(events.EventOrderPaid)},
			kafkago.Header{Key: "x-event-version", Value: []byte("1")},
		)
	}
	return nil
}

func (h *WebhookHandler) handleSessionPaymentFailed(r *http.Request, data json.RawMessage) error {
	var sess webhookSession
	if err := json.Unmarshal(data, &sess); err != nil {
		return fmt.Errorf("decode session: %w", err)
	}

	reason := "payment failed"
	applied, err := h.Orders.MarkCancelled(r.Context(), sess.ID, reason)
	if err != nil {
		return err
	}
	if !applied {
		return nil
	}
	log.Printf("payment failed: session=%s", sess.ID)

	if h.Redis != nil {
		_ = h.Redis.Del(r.Context(), fmt.Sprintf(redisx.KeySessionStatus, sess.ID)).Err()
	}

	if h.CancelledProducer != nil {
		o, err := h.Orders.GetBySession(r.Context(), sess.ID)
		if err != nil {
			log.Printf("load cancelled order %s: %v", sess.ID, err)
			return nil
		}
		env, err := events.NewEnvelope(events.EventOrderCancelled, h.Service, o.ID, events.OrderCancelledPayload{
			OrderID:   o.ID,
			SessionID: o.SessionID,
			Reason:    reason,
		})
		if err != nil {
			return err
		}
		h.CancelledProducer.Publish(events.PartitionKey(o.ID), kafkax.MustMarshal(env),
			kafkago.Header{Key: "x-event-type", Value: []byte(events.EventOrderCancelled)},
			kafkago.Header{Key: "x-event-version", Value: []byte("1")},
		)
	}
	return nil
}

func (h *WebhookHandler) handlePaymentIntentFailed(r *http.Request, data json.RawMessage) error {
	var pi webhookPaymentIntent
	if err := json.Unmarshal(data, &pi); err != nil {
		return fmt.Errorf("decode payment intent: %w", err)
	}

	reason := "unknown error"
	if pi.LastPaymentError != nil && pi.LastPaymentError.Message != "" {
		reason = pi.LastPaymentError.Message
	}
	applied, err := h.Orders.MarkCancelledByPaymentRef(r.Context(), pi.ID, "payment failed: "+reason)
	if err != nil {
		return err
	}
	if applied {
		log.Printf("payment failed: intent=%s reason=%q", pi.ID, reason)
	}
	return nil
}
