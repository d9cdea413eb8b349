package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/holyweird/storefront/internal/orders"
	"github.com/holyweird/storefront/internal/payments"
	"github.com/holyweird/storefront/internal/redisx"
)

type CheckoutHandler struct {
	Payments payments.Provider // nil = payments not configured
	Orders   orders.Repo
	Redis    *redis.Client // optional session status cache
}

func (h *CheckoutHandler) Register(r *chi.Mux) {
	r.Post("/checkout/create-session", h.createSession)
	r.Get("/checkout/session/{id}", h.getSession)
}

type checkoutLine struct {
	ProductID   string `json:"product_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	PricePence  int    `json:"price_pence"`
	Quantity    int    `json:"quantity"`
}

type createSessionReq struct {
	Lines        []checkoutLine  `json:"lines"`
	BuyerEmail   string          `json:"buyer_email,omitempty"`
	CustomConfig json.RawMessage `json:"custom_config,omitempty"`
}

func (h *CheckoutHandler) createSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if len(req.Lines) == 0 {
		writeError(w, http.StatusBadRequest, "no items provided")
		return
	}
	if h.Payments == nil {
		writeError(w, http.StatusServiceUnavailable, "payment service unavailable")
		return
	}

	// Authoritative total comes from unit price x quantity here; a
	// client-supplied total is never read.
	items := make([]payments.LineItem, 0, len(req.Lines))
	total := 0
	for _, l := range req.Lines {
		if l.Quantity < 1 {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid quantity for product %s", l.ProductID))
			return
		}
		if l.PricePence < 0 {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid price for product %s", l.ProductID))
			return
		}
		total += l.PricePence * l.Quantity
		items = append(items, payments.LineItem{
			ProductID:   l.ProductID,
			Name:        l.Name,
			Description: l.Description,
			ImageURL:    l.ImageURL,
			UnitPence:   int64(l.PricePence),
			Quantity:    int64(l.Quantity),
		})
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	sess, err := h.Payments.CreateSession(ctx, payments.CreateSessionParams{
		Items:         items,
		CustomerEmail: req.BuyerEmail,
		CustomConfig:  req.CustomConfig,
	})
	if err != nil {
		log.Printf("create checkout session: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to create checkout session")
		return
	}

	// The payment session is the source of truth; a failed order insert
	// is logged, not surfaced.
	if err := h.Orders.Create(ctx, &orders.Order{
		SessionID:  sess.ID,
		Email:      req.BuyerEmail,
		TotalPence: total,
		Status:     orders.StatusPending,
	}); err != nil {
		log.Printf("record pending order for session %s: %v", sess.ID, err)
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"session_id": sess.ID,
		"url":        sess.URL,
	})
}

func (h *CheckoutHandler) getSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if h.Payments == nil {
		writeError(w, http.StatusServiceUnavailable, "payment service unavailable")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	key := fmt.Sprintf(redisx.KeySessionStatus, id)
	if h.Redis != nil {
		if s, err := h.Redis.Get(ctx, key).Result(); err == nil && s != "" {
			writeJSON(w, http.StatusOK, json.RawMessage(s))
			return
		}
	}

	sess, err := h.Payments.GetSession(ctx, id)
	if errors.Is(err, payments.ErrSessionNotFound) {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	if err != nil {
		log.Printf("retrieve checkout session %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "failed to retrieve session")
		return
	}

	body := map[string]any{
		"id":             sess.ID,
		"status":         sess.PaymentStatus,
		"customer_email": sess.CustomerEmail,
		"amount_total":   sess.AmountTotal,
		"currency":       sess.Currency,
	}
	// The webhook may not have landed yet; a still-pending order here is
	// normal, not an error.
	if o, err := h.Orders.GetBySession(ctx, id); err == nil {
		body["order_status"] = o.Status
	}

	if h.Redis != nil {
		if b, err := json.Marshal(body); err == nil {
			_ = h.Redis.Set(ctx, key, b, redisx.TTLStatusCache).Err()
		}
	}
	writeJSON(w, http.StatusOK, body)
}
